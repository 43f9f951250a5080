package cancel_schedule

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-GymService/internal/service/catalog"
)

const (
	msgMissingScheduleID = "отсутствует ID занятия"
	msgInvalidBody       = "некорректное тело запроса"
	msgScheduleNotFound  = "занятие не найдено"
	msgAlreadyCancelled  = "занятие уже отменено"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/schedules/{scheduleId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID := vars["scheduleId"]
	if scheduleID == "" {
		h.logger.Warn("PATCH /schedules/{id}/cancel - Missing schedule ID")
		handlers.RespondBadRequest(w, msgMissingScheduleID)
		return
	}

	var req CancelScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /schedules/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.CancelSchedule(r.Context(), scheduleID, req.CascadeBookings); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrScheduleNotFound):
			h.logger.Warn("PATCH /schedules/{id}/cancel - Schedule not found: schedule_id=%s", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, catalogService.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /schedules/{id}/cancel - Already cancelled: schedule_id=%s", scheduleID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /schedules/{id}/cancel - Failed to cancel: schedule_id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedules/{id}/cancel - Schedule cancelled: schedule_id=%s", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, CancelScheduleResponse{
		ScheduleID: scheduleID,
		Status:     "Cancelled",
	})
}
