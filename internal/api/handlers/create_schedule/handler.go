package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	createSchedule "github.com/m04kA/SMC-GymService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput        = "некорректные данные занятия"
	msgOwnerNotFound       = "владелец расписания не найден"
	msgRoomNotFound        = "комната не найдена"
	msgTrainerNotFound     = "тренер не найден"
	msgTrainerRequired     = "занятию класса требуется тренер"
	msgCapacityExceedsRoom = "вместимость занятия превышает вместимость комнаты"
	msgRoomUnavailable     = "комната занята в указанное время"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// При частичном сбое повторяющейся серии отдаём конфликт
		// вместе с уже созданными занятиями
		if errors.Is(err, createSchedule.ErrRoomUnavailable) && result != nil && len(result.Created) > 0 {
			h.logger.Warn("POST /schedules - Series aborted after %d schedules: owner_id=%s, error=%v",
				len(result.Created), req.OwnerID, err)
			handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result))
			return
		}

		switch {
		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSchedule.ErrOwnerNotFound):
			h.logger.Warn("POST /schedules - Owner not found: owner_id=%s", req.OwnerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, createSchedule.ErrRoomNotFound):
			h.logger.Warn("POST /schedules - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createSchedule.ErrTrainerNotFound):
			h.logger.Warn("POST /schedules - Trainer not found: owner_id=%s", req.OwnerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createSchedule.ErrTrainerRequired):
			h.logger.Warn("POST /schedules - Trainer required: owner_id=%s", req.OwnerID)
			handlers.RespondBadRequest(w, msgTrainerRequired)

		case errors.Is(err, createSchedule.ErrCapacityExceedsRoom):
			h.logger.Warn("POST /schedules - Capacity exceeds room: owner_id=%s, room_id=%s", req.OwnerID, req.RoomID)
			handlers.RespondBadRequest(w, msgCapacityExceedsRoom)

		case errors.Is(err, createSchedule.ErrRoomUnavailable):
			h.logger.Warn("POST /schedules - Room unavailable: owner_id=%s, room_id=%s", req.OwnerID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: owner_id=%s, error=%v", req.OwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Created %d schedules: owner_id=%s", len(result.Created), req.OwnerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
