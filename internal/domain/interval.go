package domain

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// TimeRange represents a half-open time interval [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the range has positive length.
// A range with Start >= End cannot represent a real block of time.
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Duration returns the length of the range
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Overlaps returns true if the two ranges share an interior point.
// Ranges that merely touch are NOT overlapping: a consultation ending exactly
// when a block begins (or starting exactly when it ends) is legal.
// Degenerate ranges (Start >= End) never overlap anything.
//
// Examples:
// - [11:30, 12:00) vs [11:20, 11:40) → overlap (11:30-11:40)
// - [11:30, 12:00) vs [11:00, 11:30) → no overlap (touching)
// - [11:30, 12:00) vs [12:00, 12:30) → no overlap (touching)
func (r TimeRange) Overlaps(other TimeRange) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// NewCandidateRange builds the half-open range occupied by a consultation
// starting at the given time of day on the given date.
func NewCandidateRange(date time.Time, start types.TimeString, durationMinutes int) (TimeRange, error) {
	startAt, err := start.At(date)
	if err != nil {
		return TimeRange{}, err
	}

	return TimeRange{
		Start: startAt,
		End:   startAt.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}
