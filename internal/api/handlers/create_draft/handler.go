package create_draft

import (
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
)

const msgUnauthorized = "пользователь не аутентифицирован"

type Handler struct {
	service DraftFormService
	logger  Logger
}

func NewHandler(service DraftFormService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	state, err := h.service.CreateDraft(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s, user_id=%d", state.Draft.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDraftState(state))
}
