package get_member_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	membersService "github.com/m04kA/SMC-GymService/internal/service/members"
)

const (
	msgMissingMemberID = "отсутствует ID участника"
	msgMemberNotFound  = "участник не найден"
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

// Handle GET /api/v1/members/{memberId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID := vars["memberId"]
	if memberID == "" {
		h.logger.Warn("GET /members/{id}/bookings - Missing member ID")
		handlers.RespondBadRequest(w, msgMissingMemberID)
		return
	}

	bookings, err := h.service.GetBookings(r.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, membersService.ErrMemberNotFound):
			h.logger.Warn("GET /members/{id}/bookings - Member not found: member_id=%s", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("GET /members/{id}/bookings - Failed to get bookings: member_id=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/bookings - Returned %d training and %d locker bookings: member_id=%s",
		len(bookings.Training), len(bookings.Locker), memberID)
	handlers.RespondJSON(w, http.StatusOK, bookings)
}
