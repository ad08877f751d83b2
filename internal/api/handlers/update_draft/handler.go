package update_draft

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/internal/service/draftform"
	draftformModels "github.com/m04kA/HMS-AppointmentService/internal/service/draftform/models"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

const (
	msgUnauthorized      = "пользователь не аутентифицирован"
	msgInvalidRequest    = "некорректное тело запроса"
	msgUnknownEvent      = "неизвестное событие формы"
	msgMissingDoctorID   = "для события select_doctor требуется doctorId"
	msgMissingDate       = "для события select_date требуется date"
	msgMissingDuration   = "для события set_duration требуется durationMinutes"
	msgMissingTime       = "для события select_time требуется time"
	msgMissingReason     = "для события set_reason требуется reason"
	msgMissingType       = "для события set_type требуется type"
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается HH:MM"
	msgDraftNotFound     = "черновик записи не найден"
	msgAccessDenied      = "нет доступа к этому черновику"
	msgDoctorNotSelected = "сначала выберите врача"
	msgDateNotSelected   = "сначала выберите дату приёма"
	msgTimeNotAvailable  = "выбранное время недоступно"
	msgInvalidDate       = "дата приёма не может быть в прошлом"
	msgInvalidInput      = "некорректные данные формы"
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

// Handle PATCH /api/v1/drafts/{draftId}
// Тело запроса - одно событие формы; ответ - состояние формы после события
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id} - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	draftID := mux.Vars(r)["draftId"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	state, err := h.dispatch(r, &req, draftID, userID)
	if err != nil {
		h.respondError(w, err, draftID, userID)
		return
	}

	h.logger.Info("PATCH /drafts/{id} - Event %s applied: draft_id=%s, user_id=%d", req.Event, draftID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromDraftState(state))
}

// dispatch применяет событие формы к черновику
func (h *Handler) dispatch(r *http.Request, req *UpdateDraftRequest, draftID string, userID int64) (*draftformModels.DraftState, error) {
	ctx := r.Context()

	switch req.Event {
	case EventSelectDoctor:
		if req.DoctorID == nil {
			return nil, errBadRequest(msgMissingDoctorID)
		}
		return h.service.SelectDoctor(ctx, draftID, userID, *req.DoctorID)

	case EventSelectDate:
		if req.Date == nil {
			return nil, errBadRequest(msgMissingDate)
		}
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, errBadRequest(msgInvalidDateFormat)
		}
		return h.service.SelectDate(ctx, draftID, userID, date)

	case EventSetDuration:
		if req.DurationMinutes == nil {
			return nil, errBadRequest(msgMissingDuration)
		}
		return h.service.SetDuration(ctx, draftID, userID, *req.DurationMinutes)

	case EventSelectTime:
		if req.Time == nil {
			return nil, errBadRequest(msgMissingTime)
		}
		slot, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			return nil, errBadRequest(msgInvalidTimeFormat)
		}
		return h.service.SelectTime(ctx, draftID, userID, slot)

	case EventSetReason:
		if req.Reason == nil {
			return nil, errBadRequest(msgMissingReason)
		}
		return h.service.SetReason(ctx, draftID, userID, *req.Reason)

	case EventSetType:
		if req.Type == nil {
			return nil, errBadRequest(msgMissingType)
		}
		return h.service.SetType(ctx, draftID, userID, domain.AppointmentType(*req.Type))

	default:
		return nil, errBadRequest(msgUnknownEvent)
	}
}

// badRequestError локальная ошибка валидации HTTP-слоя
type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

func errBadRequest(message string) error {
	return &badRequestError{message: message}
}

func (h *Handler) respondError(w http.ResponseWriter, err error, draftID string, userID int64) {
	var badReq *badRequestError
	if errors.As(err, &badReq) {
		h.logger.Warn("PATCH /drafts/{id} - Bad request: draft_id=%s, %s", draftID, badReq.message)
		handlers.RespondBadRequest(w, badReq.message)
		return
	}

	switch {
	case errors.Is(err, draftform.ErrDraftNotFound):
		h.logger.Warn("PATCH /drafts/{id} - Draft not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, draftform.ErrAccessDenied):
		h.logger.Warn("PATCH /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, draftform.ErrDoctorNotSelected):
		h.logger.Warn("PATCH /drafts/{id} - Doctor not selected: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgDoctorNotSelected)

	case errors.Is(err, draftform.ErrDateNotSelected):
		h.logger.Warn("PATCH /drafts/{id} - Date not selected: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgDateNotSelected)

	case errors.Is(err, draftform.ErrTimeNotAvailable):
		// Выбор вне множества доступных слотов отклоняется, не корректируется
		h.logger.Warn("PATCH /drafts/{id} - Time not available: draft_id=%s", draftID)
		handlers.RespondError(w, http.StatusConflict, msgTimeNotAvailable)

	case errors.Is(err, draftform.ErrInvalidDate):
		h.logger.Warn("PATCH /drafts/{id} - Invalid date: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, draftform.ErrInvalidInput):
		h.logger.Warn("PATCH /drafts/{id} - Invalid input: draft_id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("PATCH /drafts/{id} - Failed to apply event: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
	}
}
