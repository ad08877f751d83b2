package unavailability

import (
	"context"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// HospitalAPIClient интерфейс клиента для HospitalAPI
type HospitalAPIClient interface {
	GetDoctorUnavailability(ctx context.Context, doctorID int64) ([]domain.TimeRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
