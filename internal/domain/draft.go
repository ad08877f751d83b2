package domain

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// AppointmentDraft represents an in-progress booking form session.
// Time is derived state, not independently authoritative: it is only
// meaningful while it belongs to the slot set computed from DoctorID, Date
// and DurationMinutes against the doctor's blocked intervals. Any change to
// those inputs clears it.
type AppointmentDraft struct {
	ID              string
	UserID          int64
	DoctorID        *int64
	Date            *time.Time
	DurationMinutes int
	Time            *types.TimeString
	Reason          *string
	Type            *AppointmentType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDoctor returns true once a doctor has been chosen
func (d *AppointmentDraft) HasDoctor() bool {
	return d.DoctorID != nil
}

// DateSelectable returns true if the date field is unlocked
func (d *AppointmentDraft) DateSelectable() bool {
	return d.HasDoctor()
}

// TimeSelectable returns true if the time field is unlocked
func (d *AppointmentDraft) TimeSelectable() bool {
	return d.HasDoctor() && d.Date != nil
}

// HasTime returns true if a start time is currently selected
func (d *AppointmentDraft) HasTime() bool {
	return d.Time != nil
}

// IsComplete returns true when every field required for submission is set
func (d *AppointmentDraft) IsComplete() bool {
	return d.HasDoctor() &&
		d.Date != nil &&
		d.DurationMinutes > 0 &&
		d.Time != nil &&
		d.Reason != nil &&
		d.Type != nil
}

// ClearTime drops the time selection
func (d *AppointmentDraft) ClearTime() {
	d.Time = nil
}

// Clone returns a deep copy of the draft
func (d *AppointmentDraft) Clone() *AppointmentDraft {
	clone := *d
	if d.DoctorID != nil {
		v := *d.DoctorID
		clone.DoctorID = &v
	}
	if d.Date != nil {
		v := *d.Date
		clone.Date = &v
	}
	if d.Time != nil {
		v := *d.Time
		clone.Time = &v
	}
	if d.Reason != nil {
		v := *d.Reason
		clone.Reason = &v
	}
	if d.Type != nil {
		v := *d.Type
		clone.Type = &v
	}
	return &clone
}
