package domain

// Default form values
const (
	DefaultConsultationMinutes = 30
)

// Business validation constants
const (
	MinConsultationMinutes  = 5
	MaxConsultationMinutes  = 480 // 8 hours
	ConsultationStepMinutes = 5
	MaxReasonLength         = 500
)

// Clinic schedule constants
const (
	SlotStepMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
