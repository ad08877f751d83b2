package hospitalapi

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// UnavailabilityBlock модель интервала занятости врача из HospitalAPI
type UnavailabilityBlock struct {
	StartDateTime string `json:"startDateTime"` // ISO-8601
	EndDateTime   string `json:"endDateTime"`   // ISO-8601
}

// ToTimeRange конвертирует блок в доменный интервал [start, end)
func (b *UnavailabilityBlock) ToTimeRange() (domain.TimeRange, error) {
	start, err := time.Parse(time.RFC3339, b.StartDateTime)
	if err != nil {
		return domain.TimeRange{}, err
	}

	end, err := time.Parse(time.RFC3339, b.EndDateTime)
	if err != nil {
		return domain.TimeRange{}, err
	}

	return domain.TimeRange{Start: start, End: end}, nil
}

// CreateAppointmentRequest модель запроса на создание записи к врачу
type CreateAppointmentRequest struct {
	DoctorID            int64  `json:"doctorId"`
	PatientID           int64  `json:"patientId"`
	AppointmentDateTime string `json:"appointmentDateTime"` // ISO-8601
	DurationMinutes     int    `json:"durationMinutes"`
	Reason              string `json:"reason"`
	Type                string `json:"type"`
}

// AppointmentResponse модель созданной записи из HospitalAPI
type AppointmentResponse struct {
	ID                  int64  `json:"id"`
	DoctorID            int64  `json:"doctorId"`
	PatientID           int64  `json:"patientId"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	DurationMinutes     int    `json:"durationMinutes"`
	Reason              string `json:"reason"`
	Type                string `json:"type"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
}

// ErrorResponse модель ошибки от HospitalAPI
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
