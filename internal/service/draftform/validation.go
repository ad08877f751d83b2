package draftform

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// validateDoctorID валидирует идентификатор врача
func validateDoctorID(doctorID int64) error {
	if doctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}
	return nil
}

// validateDuration валидирует длительность приёма
func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinConsultationMinutes {
		return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinConsultationMinutes)
	}
	if durationMinutes > domain.MaxConsultationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxConsultationMinutes)
	}
	if durationMinutes%domain.ConsultationStepMinutes != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes", ErrInvalidInput, domain.ConsultationStepMinutes)
	}
	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateReason валидирует причину обращения.
// Лимит длины считается в символах, не в байтах.
func validateReason(reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: reason must not be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}

// validateType валидирует тип приёма
func validateType(appointmentType domain.AppointmentType) error {
	if !appointmentType.IsValid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, appointmentType)
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
