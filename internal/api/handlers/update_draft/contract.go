package update_draft

import (
	"context"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	draftform "github.com/m04kA/HMS-AppointmentService/internal/service/draftform/models"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

type DraftFormService interface {
	SelectDoctor(ctx context.Context, draftID string, userID int64, doctorID int64) (*draftform.DraftState, error)
	SelectDate(ctx context.Context, draftID string, userID int64, date time.Time) (*draftform.DraftState, error)
	SetDuration(ctx context.Context, draftID string, userID int64, durationMinutes int) (*draftform.DraftState, error)
	SelectTime(ctx context.Context, draftID string, userID int64, slot types.TimeString) (*draftform.DraftState, error)
	SetReason(ctx context.Context, draftID string, userID int64, reason string) (*draftform.DraftState, error)
	SetType(ctx context.Context, draftID string, userID int64, appointmentType domain.AppointmentType) (*draftform.DraftState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
