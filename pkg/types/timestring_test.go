package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"00:00", false},
		{"10:30", false},
		{"23:59", false},
		{"24:00", true},
		{"10:60", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 2, 7, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("11:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))

	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))

	// Невалидные значения не упорядочены
	assert.False(t, TimeString("bad").IsBefore(a))
	assert.False(t, a.IsAfter(TimeString("bad")))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	got, err = ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	got := TimeString("10:30").At(date)
	assert.Equal(t, time.Date(2026, 2, 7, 10, 30, 0, 0, time.UTC), got)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	assert.Equal(t, 90, TimeString("10:00").MinutesUntil("11:30"))
	assert.Equal(t, -90, TimeString("11:30").MinutesUntil("10:00"))
	assert.Equal(t, 0, TimeString("bad").MinutesUntil("10:00"))
}
