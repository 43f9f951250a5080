package create_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
)

// UseCase use case для создания занятия в расписании класса или тренера
type UseCase struct {
	store  GymStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store GymStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute выполняет use case создания занятия.
// При Repeat создаётся серия занятий; конфликт в середине серии
// прерывает её, но уже созданные занятия остаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: owner=%s, room=%s, date=%s, time=%s-%s",
		req.OwnerID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим владельца расписания: класс или тренер
	gymClass, ownerTrainer, err := uc.store.ScheduleOwner(req.OwnerID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrOwnerNotFound) {
			uc.logger.Warn("CreateSchedule: owner %s not found", req.OwnerID)
			return nil, fmt.Errorf("%w: %s", ErrOwnerNotFound, req.OwnerID)
		}
		uc.logger.Error("CreateSchedule: failed to resolve owner %s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to resolve owner: %v", ErrInternal, err)
	}

	// 3. Получаем комнату
	room, err := uc.store.RoomByID(req.RoomID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateSchedule: room %s not found", req.RoomID)
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomID)
		}
		uc.logger.Error("CreateSchedule: failed to get room %s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Получаем тренера, если указан явно.
	// Для расписания тренера он подставляется сам, для класса обязателен.
	var trainer *domain.Trainer
	if req.TrainerID != nil {
		trainer, err = uc.store.TrainerByID(*req.TrainerID)
		if err != nil {
			if errors.Is(err, gymRepo.ErrTrainerNotFound) {
				uc.logger.Warn("CreateSchedule: trainer %s not found", *req.TrainerID)
				return nil, fmt.Errorf("%w: %s", ErrTrainerNotFound, *req.TrainerID)
			}
			uc.logger.Error("CreateSchedule: failed to get trainer %s: %v", *req.TrainerID, err)
			return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
		}
	}

	var book *domain.ScheduleBook
	if gymClass != nil {
		book = gymClass.Book()
	} else {
		book = ownerTrainer.Book()
	}

	// 5. Создаём занятие или серию занятий
	if req.Repeat == nil {
		schedule, err := book.CreateSchedule(req.StartTime, req.EndTime, req.Date, req.Capacity, room, trainer, gymClass)
		if err != nil {
			uc.logger.Warn("CreateSchedule: failed to create schedule for owner %s: %v", req.OwnerID, err)
			return nil, mapDomainError(err)
		}
		uc.logger.Info("CreateSchedule: created %s", schedule.ID)
		return &Response{Created: []ScheduleView{toView(schedule)}}, nil
	}

	created, err := book.CreateRepeatingSchedule(
		req.StartTime, req.EndTime, req.Date,
		req.Repeat.IntervalDays, req.Repeat.Occurrences,
		req.Capacity, room, trainer, gymClass)

	resp := &Response{Created: make([]ScheduleView, 0, len(created))}
	for _, s := range created {
		resp.Created = append(resp.Created, toView(s))
	}
	if err != nil {
		uc.logger.Warn("CreateSchedule: repeating series for owner %s aborted after %d schedules: %v",
			req.OwnerID, len(created), err)
		return resp, mapDomainError(err)
	}

	uc.logger.Info("CreateSchedule: created %d schedules for owner %s", len(created), req.OwnerID)
	return resp, nil
}

func toView(s *domain.Schedule) ScheduleView {
	return ScheduleView{
		ID:        s.ID,
		Date:      s.Window.Date.Format(domain.DateFormat),
		StartTime: s.Window.Start.String(),
		EndTime:   s.Window.End.String(),
		Type:      string(s.Type()),
		Capacity:  s.Capacity,
		RoomID:    s.Room.ID,
	}
}

// mapDomainError переводит ошибки домена в ошибки usecase
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrTrainerRequired):
		return fmt.Errorf("%w: %v", ErrTrainerRequired, err)
	case errors.Is(err, domain.ErrCapacityExceedsRoom):
		return fmt.Errorf("%w: %v", ErrCapacityExceedsRoom, err)
	case errors.Is(err, domain.ErrRoomUnavailable):
		return fmt.Errorf("%w: %v", ErrRoomUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
