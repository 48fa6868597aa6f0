package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// BusinessHours represents a recurring weekly open-hours window of a professional
// DayOfWeek: 0 = Sunday .. 6 = Saturday (совпадает с time.Weekday)
type BusinessHours struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      int
	StartTime      types.TimeString
	EndTime        types.TimeString
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Window returns the concrete [start, end) interval of the window on the given calendar day
// Day is interpreted in its own location
func (h *BusinessHours) Window(day time.Time) (start time.Time, end time.Time, err error) {
	start, err = h.StartTime.At(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = h.EndTime.At(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Overlaps returns true if both windows are on the same day and intersect
// Окна, касающиеся границами (10:00-12:00 и 12:00-14:00), не пересекаются
func (h *BusinessHours) Overlaps(other *BusinessHours) bool {
	if h.DayOfWeek != other.DayOfWeek {
		return false
	}
	return h.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(h.EndTime)
}

// IsValidDayOfWeek returns true for 0..6
func IsValidDayOfWeek(day int) bool {
	return day >= int(time.Sunday) && day <= int(time.Saturday)
}
