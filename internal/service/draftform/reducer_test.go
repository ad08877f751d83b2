package draftform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/pkg/ptr"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

func filledDraft() domain.AppointmentDraft {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	slot := types.TimeString("10:00")
	return domain.AppointmentDraft{
		ID:              "draft-1",
		UserID:          7,
		DoctorID:        ptr.Ptr(int64(42)),
		Date:            &date,
		DurationMinutes: 30,
		Time:            &slot,
	}
}

func TestApplyDoctorSelection(t *testing.T) {
	d := filledDraft()

	next := applyDoctorSelection(d, 99)

	// Новый врач выбран, зависимые поля сброшены
	require.NotNil(t, next.DoctorID)
	assert.Equal(t, int64(99), *next.DoctorID)
	assert.Nil(t, next.Date)
	assert.Nil(t, next.Time)

	// Исходный черновик не изменён
	assert.Equal(t, int64(42), *d.DoctorID)
	assert.NotNil(t, d.Date)
	assert.NotNil(t, d.Time)
}

func TestApplyDoctorSelection_SameDoctorStillClears(t *testing.T) {
	// Повторный выбор того же врача тоже сбрасывает зависимые поля
	d := filledDraft()

	next := applyDoctorSelection(d, 42)

	assert.Nil(t, next.Date)
	assert.Nil(t, next.Time)
}

func TestApplyDateSelection(t *testing.T) {
	d := filledDraft()

	newDate := time.Date(2025, 3, 12, 15, 30, 45, 0, time.UTC)
	next, err := applyDateSelection(d, newDate)
	require.NoError(t, err)

	// Дата усечена до дня, время сброшено
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), *next.Date)
	assert.Nil(t, next.Time)
}

func TestApplyDateSelection_RequiresDoctor(t *testing.T) {
	d := domain.AppointmentDraft{ID: "draft-1", UserID: 7}

	_, err := applyDateSelection(d, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrDoctorNotSelected)
}

func TestApplyDurationChange_ClearsTime(t *testing.T) {
	d := filledDraft()

	next := applyDurationChange(d, 60)

	assert.Equal(t, 60, next.DurationMinutes)
	assert.Nil(t, next.Time)
}

func TestApplyDurationChange_SameDurationStillClears(t *testing.T) {
	// Даже если время осталось бы доступным, оно сбрасывается:
	// устаревший выбор никогда не сохраняется молча
	d := filledDraft()

	next := applyDurationChange(d, d.DurationMinutes)

	assert.Nil(t, next.Time)
}

func TestApplyTimeSelection(t *testing.T) {
	available := []types.TimeString{"08:00", "08:30", "10:00"}

	t.Run("slot in available set", func(t *testing.T) {
		d := filledDraft()
		d.Time = nil

		next, err := applyTimeSelection(d, "08:30", available)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("08:30"), *next.Time)
	})

	t.Run("slot outside available set is rejected", func(t *testing.T) {
		d := filledDraft()
		d.Time = nil

		_, err := applyTimeSelection(d, "09:00", available)
		assert.ErrorIs(t, err, ErrTimeNotAvailable)
	})

	t.Run("empty available set rejects everything", func(t *testing.T) {
		d := filledDraft()
		d.Time = nil

		_, err := applyTimeSelection(d, "08:00", nil)
		assert.ErrorIs(t, err, ErrTimeNotAvailable)
	})

	t.Run("date not selected", func(t *testing.T) {
		d := filledDraft()
		d.Date = nil

		_, err := applyTimeSelection(d, "08:00", available)
		assert.ErrorIs(t, err, ErrDateNotSelected)
	})
}

func TestApplyReasonAndType(t *testing.T) {
	d := filledDraft()

	next := applyReason(d, "плановый осмотр")
	require.NotNil(t, next.Reason)
	assert.Equal(t, "плановый осмотр", *next.Reason)
	// Причина не задевает время
	assert.NotNil(t, next.Time)

	next = applyType(d, domain.TypeCheckup)
	require.NotNil(t, next.Type)
	assert.Equal(t, domain.TypeCheckup, *next.Type)
	assert.NotNil(t, next.Time)
}
