package enroll_member

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
	memberModels "github.com/m04kA/SMC-GymService/internal/service/members/models"
)

// UseCase use case для записи участника на занятие
type UseCase struct {
	store       GymStore
	enrollments EnrollmentRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store GymStore, enrollments EnrollmentRecorder, logger Logger) *UseCase {
	return &UseCase{
		store:       store,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Execute выполняет use case записи на занятие.
// Если занятие заполнено, участник попадает в очередь ожидания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EnrollMember: citizen=%s, schedule=%s", req.CitizenID, req.ScheduleID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EnrollMember: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем участника
	member, err := uc.store.MemberByCitizenID(req.CitizenID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrMemberNotFound) {
			uc.logger.Warn("EnrollMember: member citizen=%s not found", req.CitizenID)
			return nil, fmt.Errorf("%w: citizen id %s", ErrMemberNotFound, req.CitizenID)
		}
		uc.logger.Error("EnrollMember: failed to get member citizen=%s: %v", req.CitizenID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	// 3. Получаем занятие
	schedule, err := uc.store.ScheduleByID(req.ScheduleID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrScheduleNotFound) {
			uc.logger.Warn("EnrollMember: schedule %s not found", req.ScheduleID)
			return nil, fmt.Errorf("%w: %s", ErrScheduleNotFound, req.ScheduleID)
		}
		uc.logger.Error("EnrollMember: failed to get schedule %s: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Отменённое занятие не принимает записи
	if schedule.Status() == domain.ScheduleCancelled {
		uc.logger.Warn("EnrollMember: schedule %s is cancelled", req.ScheduleID)
		return nil, fmt.Errorf("%w: %s", ErrScheduleCancelled, req.ScheduleID)
	}

	// 5. Записываем: при свободных местах бронирование Pending,
	// иначе участник встаёт в очередь ожидания
	booking := schedule.EnrollMember(member)
	status := booking.Status()

	if uc.enrollments != nil {
		uc.enrollments.RecordEnrollment(string(status))
	}

	resp := &Response{
		MemberID:   member.ID,
		ScheduleID: schedule.ID,
		Status:     memberModels.RenderStatus(status),
	}
	if status == domain.StatusWaitlist {
		pos := schedule.QueuePosition(booking)
		resp.QueuePosition = &pos
	}

	uc.logger.Info("EnrollMember: member %s enrolled to %s with status %s", member.ID, schedule.ID, status)
	return resp, nil
}
