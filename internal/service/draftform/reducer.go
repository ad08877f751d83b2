package draftform

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// Чистые переходы состояния формы. Каждый переход явно перечисляет, какие
// производные поля он инвалидирует; сервис только применяет переход и
// сохраняет результат.

// applyDoctorSelection выбирает врача.
// Ранее выбранные дата и время сбрасываются: они зависят от занятости
// конкретного врача и устаревают при его смене.
func applyDoctorSelection(d domain.AppointmentDraft, doctorID int64) domain.AppointmentDraft {
	d.DoctorID = &doctorID
	d.Date = nil
	d.Time = nil
	return d
}

// applyDateSelection выбирает дату. Требует выбранного врача.
// Ранее выбранное время сбрасывается: множество доступных слотов для новой
// даты другое.
func applyDateSelection(d domain.AppointmentDraft, date time.Time) (domain.AppointmentDraft, error) {
	if !d.HasDoctor() {
		return d, ErrDoctorNotSelected
	}

	// Храним только дату, без времени
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	d.Date = &day
	d.Time = nil
	return d, nil
}

// applyDurationChange меняет длительность приёма.
// Ранее выбранное время сбрасывается, даже если оно осталось бы доступным:
// устаревший выбор никогда не сохраняется молча.
func applyDurationChange(d domain.AppointmentDraft, durationMinutes int) domain.AppointmentDraft {
	d.DurationMinutes = durationMinutes
	d.Time = nil
	return d
}

// applyTimeSelection выбирает время начала приёма.
// Выбор допустим только из текущего множества доступных слотов; значение вне
// множества отклоняется с ошибкой, а не корректируется.
func applyTimeSelection(
	d domain.AppointmentDraft,
	slot types.TimeString,
	available []types.TimeString,
) (domain.AppointmentDraft, error) {
	if !d.TimeSelectable() {
		return d, ErrDateNotSelected
	}

	if !domain.ContainsSlot(available, slot) {
		return d, ErrTimeNotAvailable
	}

	d.Time = &slot
	return d, nil
}

// applyReason устанавливает причину обращения
func applyReason(d domain.AppointmentDraft, reason string) domain.AppointmentDraft {
	d.Reason = &reason
	return d
}

// applyType устанавливает тип приёма
func applyType(d domain.AppointmentDraft, appointmentType domain.AppointmentType) domain.AppointmentDraft {
	d.Type = &appointmentType
	return d
}
