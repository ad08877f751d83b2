package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

func TestSlotCatalog(t *testing.T) {
	catalog := SlotCatalog()

	// Две сессии по 4 часа с шагом 30 минут
	require.Len(t, catalog, 16)
	assert.Equal(t, 16, SlotCatalogSize())

	assert.Equal(t, types.TimeString("08:00"), catalog[0])
	assert.Equal(t, types.TimeString("11:30"), catalog[7])
	assert.Equal(t, types.TimeString("13:00"), catalog[8])
	assert.Equal(t, types.TimeString("16:30"), catalog[15])
}

func TestSlotCatalog_Ordered(t *testing.T) {
	catalog := SlotCatalog()

	for i := 1; i < len(catalog); i++ {
		assert.True(t, catalog[i-1].IsBefore(catalog[i]),
			"catalog must be strictly ascending: %s before %s", catalog[i-1], catalog[i])
	}
}

func TestSlotCatalog_MiddayBreakHasNoCandidates(t *testing.T) {
	// Перерыв [12:00, 13:00) структурный: в нём нет кандидатов вовсе
	for _, slot := range SlotCatalog() {
		inBreak := !slot.IsBefore("12:00") && slot.IsBefore("13:00")
		assert.False(t, inBreak, "slot %s falls inside the midday break", slot)
	}
}

func TestSlotCatalog_ReturnsCopy(t *testing.T) {
	first := SlotCatalog()
	first[0] = "00:00"

	second := SlotCatalog()
	assert.Equal(t, types.TimeString("08:00"), second[0])
}
