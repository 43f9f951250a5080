package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
	"github.com/m04kA/SMC-GymService/internal/service/catalog/models"
)

// Service сервис каталога: список классов с расписаниями и отмена занятий
type Service struct {
	store GymStore
	// cancelCascade: отмена расписания каскадно отменяет его бронирования
	// (политика из конфигурации; по умолчанию выключена)
	cancelCascade bool
	logger        Logger
}

// NewService создает сервис каталога
func NewService(store GymStore, cancelCascade bool, logger Logger) *Service {
	return &Service{
		store:         store,
		cancelCascade: cancelCascade,
		logger:        logger,
	}
}

// ListAvailableClasses возвращает все классы с вложенными summary расписаний
func (s *Service) ListAvailableClasses(ctx context.Context) []models.ClassSummary {
	classes := s.store.Classes()
	out := make([]models.ClassSummary, 0, len(classes))
	for _, c := range classes {
		out = append(out, models.FromDomainClass(c))
	}
	s.logger.Info("ListAvailableClasses: returned %d classes", len(out))
	return out
}

// GetSchedule возвращает summary одного расписания
func (s *Service) GetSchedule(ctx context.Context, scheduleID string) (*models.ScheduleSummary, error) {
	schedule, err := s.store.ScheduleByID(scheduleID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule id=%s not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}
	summary := models.FromDomainSchedule(schedule)
	return &summary, nil
}

// CancelSchedule отменяет занятие целиком. Каскадная отмена бронирований
// управляется политикой конфигурации; override позволяет переопределить её
// для конкретного вызова.
func (s *Service) CancelSchedule(ctx context.Context, scheduleID string, override *bool) error {
	schedule, err := s.store.ScheduleByID(scheduleID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrScheduleNotFound) {
			s.logger.Warn("CancelSchedule: schedule id=%s not found", scheduleID)
			return ErrScheduleNotFound
		}
		return fmt.Errorf("%w: CancelSchedule - repository error: %v", ErrInternal, err)
	}

	if schedule.Status() == domain.ScheduleCancelled {
		s.logger.Warn("CancelSchedule: schedule id=%s is already cancelled", scheduleID)
		return ErrAlreadyCancelled
	}

	cascade := s.cancelCascade
	if override != nil {
		cascade = *override
	}

	schedule.Cancel(cascade)
	s.logger.Info("CancelSchedule: cancelled schedule id=%s cascade=%t", scheduleID, cascade)
	return nil
}
