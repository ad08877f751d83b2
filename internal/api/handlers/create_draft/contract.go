package create_draft

import (
	"context"

	draftform "github.com/m04kA/HMS-AppointmentService/internal/service/draftform/models"
)

type DraftFormService interface {
	CreateDraft(ctx context.Context, userID int64) (*draftform.DraftState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
