package domain

import "time"

// AppointmentType represents the kind of visit requested through the portal
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeFollowUp     AppointmentType = "follow_up"
	TypeCheckup      AppointmentType = "checkup"
	TypeProcedure    AppointmentType = "procedure"
)

// AppointmentTypes перечень допустимых типов приёма
var AppointmentTypes = []AppointmentType{
	TypeConsultation,
	TypeFollowUp,
	TypeCheckup,
	TypeProcedure,
}

// IsValid returns true if the type is one of the known appointment types
func (t AppointmentType) IsValid() bool {
	for _, known := range AppointmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AppointmentStatus represents the status of a confirmed appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a confirmed appointment as returned by the hospital API
type Appointment struct {
	ID              int64
	DoctorID        int64
	PatientID       int64
	StartAt         time.Time
	DurationMinutes int
	Reason          string
	Type            AppointmentType
	Status          AppointmentStatus
	CreatedAt       time.Time
}
