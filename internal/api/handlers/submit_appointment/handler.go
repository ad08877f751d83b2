package submit_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	submitAppointment "github.com/m04kA/HMS-AppointmentService/internal/usecase/submit_appointment"
)

const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgDraftNotFound    = "черновик записи не найден"
	msgAccessDenied     = "нет доступа к этому черновику"
	msgDraftIncomplete  = "заполнены не все обязательные поля формы"
	msgTimeNotAvailable = "выбранное время больше недоступно, выберите другое"
	msgSlotConflict     = "это время только что заняли, выберите другое"
	msgDoctorNotFound   = "врач не найден"
	msgInvalidInput     = "некорректные данные формы"
)

type Handler struct {
	usecase SubmitAppointmentUseCase
	logger  Logger
}

func NewHandler(usecase SubmitAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
// Отправляет заполненную форму: повторно проверяет доступность времени и
// создаёт запись в HospitalAPI; успешная отправка удаляет черновик
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	draftID := mux.Vars(r)["draftId"]

	req := &submitAppointment.Request{
		DraftID: draftID,
		UserID:  userID,
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, err, draftID, userID)
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Appointment created: draft_id=%s, user_id=%d, appointment_id=%d",
		draftID, userID, resp.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromAppointment(resp.Appointment))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, draftID string, userID int64) {
	switch {
	case errors.Is(err, submitAppointment.ErrDraftNotFound):
		h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, submitAppointment.ErrAccessDenied):
		h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%d", draftID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, submitAppointment.ErrDraftIncomplete):
		h.logger.Warn("POST /drafts/{id}/submit - Draft incomplete: draft_id=%s", draftID)
		handlers.RespondBadRequest(w, msgDraftIncomplete)

	case errors.Is(err, submitAppointment.ErrTimeNotAvailable):
		// Время стало недоступно по свежим данным, запись не отправлялась
		h.logger.Warn("POST /drafts/{id}/submit - Time not available: draft_id=%s", draftID)
		handlers.RespondError(w, http.StatusConflict, msgTimeNotAvailable)

	case errors.Is(err, submitAppointment.ErrSlotConflict):
		// Бэкенд отклонил запись: слот заняли после локальной проверки
		h.logger.Warn("POST /drafts/{id}/submit - Slot conflict: draft_id=%s", draftID)
		handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

	case errors.Is(err, submitAppointment.ErrDoctorNotFound):
		h.logger.Warn("POST /drafts/{id}/submit - Doctor not found: draft_id=%s", draftID)
		handlers.RespondNotFound(w, msgDoctorNotFound)

	case errors.Is(err, submitAppointment.ErrInvalidInput):
		h.logger.Warn("POST /drafts/{id}/submit - Invalid input: draft_id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("POST /drafts/{id}/submit - Failed to submit: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
	}
}
