package domain

import "github.com/m04kA/HMS-AppointmentService/pkg/types"

// clinicSessions define the clinic's operating sessions. The midday break
// between them is structural: no candidate slot exists inside it at all.
var clinicSessions = []struct {
	open  types.TimeString
	close types.TimeString
}{
	{open: "08:00", close: "12:00"},
	{open: "13:00", close: "17:00"},
}

// slotCatalog is built once at process start and never mutated
var slotCatalog = buildSlotCatalog()

func buildSlotCatalog() []types.TimeString {
	catalog := make([]types.TimeString, 0)

	for _, session := range clinicSessions {
		current := session.open
		for current.IsBefore(session.close) {
			catalog = append(catalog, current)

			next, err := current.AddMinutes(SlotStepMinutes)
			if err != nil {
				break
			}
			current = next
		}
	}

	return catalog
}

// SlotCatalog returns the clinic's fixed ordered sequence of candidate start
// times. The returned slice is a copy: filtering always produces a new
// sequence, the catalog itself stays intact.
func SlotCatalog() []types.TimeString {
	catalog := make([]types.TimeString, len(slotCatalog))
	copy(catalog, slotCatalog)
	return catalog
}

// SlotCatalogSize returns the number of candidate start times
func SlotCatalogSize() int {
	return len(slotCatalog)
}
