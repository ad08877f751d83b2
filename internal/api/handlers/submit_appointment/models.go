package submit_appointment

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// AppointmentResponse HTTP response model созданной записи
type AppointmentResponse struct {
	AppointmentID   int64  `json:"appointmentId"`
	DoctorID        int64  `json:"doctorId"`
	StartAt         string `json:"startAt"` // ISO-8601
	DurationMinutes int    `json:"durationMinutes"`
	Reason          string `json:"reason"`
	Type            string `json:"type"`
	Status          string `json:"status"`
}

// FromAppointment конвертирует созданную запись в HTTP response
func FromAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID:   appt.ID,
		DoctorID:        appt.DoctorID,
		StartAt:         appt.StartAt.Format(time.RFC3339),
		DurationMinutes: appt.DurationMinutes,
		Reason:          appt.Reason,
		Type:            string(appt.Type),
		Status:          string(appt.Status),
	}
}
