package submit_appointment

import (
	"context"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/internal/integrations/hospitalapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AppointmentDraft, error)
	Update(ctx context.Context, d *domain.AppointmentDraft) (*domain.AppointmentDraft, error)
	Delete(ctx context.Context, id string) error
}

// HospitalAPIClient интерфейс клиента для HospitalAPI
type HospitalAPIClient interface {
	GetDoctorUnavailabilityWithGracefulDegradation(ctx context.Context, doctorID int64) ([]domain.TimeRange, error)
	CreateAppointment(ctx context.Context, appointment *hospitalapi.CreateAppointmentRequest) (*hospitalapi.AppointmentResponse, error)
}

// UnavailabilityProvider интерфейс сервиса занятости врачей.
// Forget освобождает состояние черновика после закрытия формы.
type UnavailabilityProvider interface {
	Forget(draftID string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
