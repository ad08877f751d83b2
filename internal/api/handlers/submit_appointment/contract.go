package submit_appointment

import (
	"context"

	submitAppointment "github.com/m04kA/HMS-AppointmentService/internal/usecase/submit_appointment"
)

type SubmitAppointmentUseCase interface {
	Execute(ctx context.Context, req *submitAppointment.Request) (*submitAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
