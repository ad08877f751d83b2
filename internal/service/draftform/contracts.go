package draftform

import (
	"context"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, d *domain.AppointmentDraft) (*domain.AppointmentDraft, error)
	GetByID(ctx context.Context, id string) (*domain.AppointmentDraft, error)
	Update(ctx context.Context, d *domain.AppointmentDraft) (*domain.AppointmentDraft, error)
	Delete(ctx context.Context, id string) error
}

// UnavailabilityProvider интерфейс поставщика интервалов занятости врачей.
// Get возвращает false вторым значением, пока данные для текущего врача
// черновика не загружены.
type UnavailabilityProvider interface {
	Refresh(draftID string, doctorID int64)
	Get(draftID string, doctorID int64) ([]domain.TimeRange, bool)
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
