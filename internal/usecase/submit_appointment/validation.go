package submit_appointment

import (
	"fmt"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDraftComplete проверяет, что все обязательные поля формы заполнены
func validateDraftComplete(d *domain.AppointmentDraft) error {
	if d.DoctorID == nil {
		return fmt.Errorf("%w: doctor is not selected", ErrDraftIncomplete)
	}

	if d.Date == nil {
		return fmt.Errorf("%w: date is not selected", ErrDraftIncomplete)
	}

	if d.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration is not set", ErrDraftIncomplete)
	}

	if d.Time == nil {
		return fmt.Errorf("%w: time is not selected", ErrDraftIncomplete)
	}

	if d.Reason == nil || *d.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrDraftIncomplete)
	}

	if d.Type == nil || !d.Type.IsValid() {
		return fmt.Errorf("%w: appointment type is required", ErrDraftIncomplete)
	}

	return nil
}
