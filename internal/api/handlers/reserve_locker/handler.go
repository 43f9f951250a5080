package reserve_locker

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	membersService "github.com/m04kA/SMC-GymService/internal/service/members"
	"github.com/m04kA/SMC-GymService/internal/service/members/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования шкафчика"
	msgMemberNotFound     = "участник не найден"
	msgRoomNotFound       = "комната не найдена"
	msgNoLockerAvailable  = "нет свободного шкафчика выбранного типа"
)

type Handler struct {
	service MemberService
	logger  Logger
}

func NewHandler(service MemberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/lockers/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReserveLockerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lockers/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.ReserveLocker(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, membersService.ErrInvalidInput):
			h.logger.Warn("POST /lockers/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, membersService.ErrMemberNotFound):
			h.logger.Warn("POST /lockers/reservations - Member not found: member_id=%s", req.MemberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, membersService.ErrRoomNotFound):
			h.logger.Warn("POST /lockers/reservations - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, membersService.ErrNoLockerAvailable):
			h.logger.Warn("POST /lockers/reservations - No locker available: room_id=%s, kind=%s", req.RoomID, req.Kind)
			handlers.RespondError(w, http.StatusConflict, msgNoLockerAvailable)

		default:
			h.logger.Error("POST /lockers/reservations - Failed to reserve: member_id=%s, error=%v", req.MemberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lockers/reservations - Locker reserved: member_id=%s, locker_id=%s", req.MemberID, booking.LockerID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
