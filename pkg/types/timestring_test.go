package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "08:00", want: "08:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing zero padding", input: "8:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add half hour", start: "08:00", minutes: 30, want: "08:30"},
		{name: "cross hour boundary", start: "11:45", minutes: 30, want: "12:15"},
		{name: "add zero", start: "13:00", minutes: 0, want: "13:00"},
		{name: "subtract", start: "10:00", minutes: -30, want: "09:30"},
		{name: "overflow past midnight", start: "23:45", minutes: 30, wantErr: true},
		{name: "exactly midnight is out of range", start: "23:30", minutes: 30, wantErr: true},
		{name: "underflow before midnight", start: "00:15", minutes: -30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.False(t, TimeString("08:30").IsBefore("08:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("17:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Lexicographic order matches chronological order for zero-padded values
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), got)

	// Время суток накладывается на дату независимо от времени в самой дате
	noon := time.Date(2025, 3, 10, 12, 45, 59, 0, time.UTC)
	got, err = TimeString("08:00").At(noon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), got)

	_, err = TimeString("bad").At(date)
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("13:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, m)

	_, err = TimeString("").Minutes()
	assert.Error(t, err)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("12:00").Validate())
	assert.Error(t, TimeString("25:00").Validate())
	assert.Error(t, TimeString("").Validate())
}
