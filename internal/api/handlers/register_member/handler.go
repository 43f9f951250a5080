package register_member

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	membersService "github.com/m04kA/SMC-GymService/internal/service/members"
	"github.com/m04kA/SMC-GymService/internal/service/members/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные участника"
	msgDuplicateCitizenID = "участник с таким citizen id уже зарегистрирован"
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

// Handle POST /api/v1/members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /members - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	member, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, membersService.ErrInvalidInput):
			h.logger.Warn("POST /members - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, membersService.ErrDuplicateCitizenID):
			h.logger.Warn("POST /members - Duplicate citizen id: %s", req.CitizenID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCitizenID)

		default:
			h.logger.Error("POST /members - Failed to register member: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /members - Member registered: member_id=%s", member.ID)
	handlers.RespondJSON(w, http.StatusCreated, member)
}
