package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessHours_Overlaps(t *testing.T) {
	morning := &BusinessHours{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}

	tests := []struct {
		name  string
		other *BusinessHours
		want  bool
	}{
		{"adjacent", &BusinessHours{DayOfWeek: 1, StartTime: "12:00", EndTime: "14:00"}, false},
		{"inside", &BusinessHours{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"}, true},
		{"crossing end", &BusinessHours{DayOfWeek: 1, StartTime: "11:30", EndTime: "13:00"}, true},
		{"other day", &BusinessHours{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, morning.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(morning))
		})
	}
}

func TestIsValidDayOfWeek(t *testing.T) {
	assert.True(t, IsValidDayOfWeek(0))
	assert.True(t, IsValidDayOfWeek(6))
	assert.False(t, IsValidDayOfWeek(-1))
	assert.False(t, IsValidDayOfWeek(7))
}

func TestBusinessHours_Window(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	h := &BusinessHours{StartTime: "09:30", EndTime: "18:00"}
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, loc)

	start, end, err := h.Window(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 6, 30, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC), end.UTC())
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, 3, 4, 15, 45, 0, 0, time.UTC)
	start, end := DayBounds(at, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 4, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestService_IsBookableFor(t *testing.T) {
	s := &Service{ProfessionalID: 7, DurationMinutes: 30, IsActive: true}
	assert.True(t, s.IsBookableFor(7))
	assert.False(t, s.IsBookableFor(8))

	s.IsActive = false
	assert.False(t, s.IsBookableFor(7))
}
