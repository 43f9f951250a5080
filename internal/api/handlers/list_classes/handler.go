package list_classes

import (
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
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

// Handle GET /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classes := h.service.ListAvailableClasses(r.Context())

	h.logger.Info("GET /classes - Returned %d classes", len(classes))
	handlers.RespondJSON(w, http.StatusOK, classes)
}
