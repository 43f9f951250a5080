package pay_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	payBookings "github.com/m04kA/SMC-GymService/internal/usecase/pay_bookings"
)

const (
	msgMissingMemberID    = "отсутствует ID участника"
	msgMemberNotFound     = "участник не найден"
	msgPriceNotConfigured = "цена не настроена, обратитесь к администратору"
)

type Handler struct {
	useCase PayBookingsUseCase
	logger  Logger
}

func NewHandler(useCase PayBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/members/{memberId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID := vars["memberId"]
	if memberID == "" {
		h.logger.Warn("POST /members/{id}/payments - Missing member ID")
		handlers.RespondBadRequest(w, msgMissingMemberID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &payBookings.Request{MemberID: memberID})
	if err != nil {
		switch {
		case errors.Is(err, payBookings.ErrMemberNotFound):
			h.logger.Warn("POST /members/{id}/payments - Member not found: member_id=%s", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, payBookings.ErrPriceNotConfigured):
			h.logger.Error("POST /members/{id}/payments - Price not configured: member_id=%s, error=%v", memberID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPriceNotConfigured)

		default:
			h.logger.Error("POST /members/{id}/payments - Payment failed: member_id=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /members/{id}/payments - Paid %d bookings, total=%.2f: member_id=%s",
		len(result.Lines), result.Total, memberID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
