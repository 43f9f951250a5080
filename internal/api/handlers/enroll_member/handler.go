package enroll_member

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	enrollMember "github.com/m04kA/SMC-GymService/internal/usecase/enroll_member"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgMemberNotFound     = "участник не найден"
	msgScheduleNotFound   = "занятие не найдено"
	msgScheduleCancelled  = "занятие отменено"
)

type Handler struct {
	useCase EnrollMemberUseCase
	logger  Logger
}

func NewHandler(useCase EnrollMemberUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/enrollments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EnrollRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /enrollments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, enrollMember.ErrInvalidInput):
			h.logger.Warn("POST /enrollments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, enrollMember.ErrMemberNotFound):
			h.logger.Warn("POST /enrollments - Member not found: citizen_id=%s", req.CitizenID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, enrollMember.ErrScheduleNotFound):
			h.logger.Warn("POST /enrollments - Schedule not found: schedule_id=%s", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, enrollMember.ErrScheduleCancelled):
			h.logger.Warn("POST /enrollments - Schedule cancelled: schedule_id=%s", req.ScheduleID)
			handlers.RespondError(w, http.StatusConflict, msgScheduleCancelled)

		default:
			h.logger.Error("POST /enrollments - Failed to enroll: citizen_id=%s, schedule_id=%s, error=%v",
				req.CitizenID, req.ScheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enrollments - Enrolled: member_id=%s, schedule_id=%s, status=%s",
		result.MemberID, result.ScheduleID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
