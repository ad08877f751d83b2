package discard_draft

import "context"

type DraftFormService interface {
	DiscardDraft(ctx context.Context, draftID string, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
