package discard_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/service/draftform"
)

const (
	msgUnauthorized  = "пользователь не аутентифицирован"
	msgDraftNotFound = "черновик записи не найден"
	msgAccessDenied  = "нет доступа к этому черновику"
)

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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	draftID := mux.Vars(r)["draftId"]

	if err := h.service.DiscardDraft(r.Context(), draftID, userID); err != nil {
		switch {
		case errors.Is(err, draftform.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, draftform.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to discard draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s, user_id=%d", draftID, userID)
	w.WriteHeader(http.StatusNoContent)
}
