package domain

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// AvailableSlots computes the ordered subset of the slot catalog that is
// bookable on the given date for a consultation of the given duration.
// A candidate start time is included iff no blocked interval overlaps the
// half-open range it would occupy. Catalog order is preserved.
//
// An empty (or nil) blocked list yields the full catalog: absence of fetched
// data is not the same as absence of availability.
func AvailableSlots(date time.Time, durationMinutes int, blocked []TimeRange) []types.TimeString {
	available := make([]types.TimeString, 0, len(slotCatalog))

	for _, slot := range slotCatalog {
		candidate, err := NewCandidateRange(date, slot, durationMinutes)
		if err != nil {
			// Catalog entries are always well-formed; skip rather than fail
			continue
		}

		if overlapsAny(candidate, blocked) {
			continue
		}

		available = append(available, slot)
	}

	return available
}

// overlapsAny returns true if the candidate range overlaps at least one of
// the blocked intervals. Degenerate blocks never overlap (see TimeRange.Overlaps).
func overlapsAny(candidate TimeRange, blocked []TimeRange) bool {
	for _, b := range blocked {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// ContainsSlot reports whether the slot is a member of the given slot set
func ContainsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
