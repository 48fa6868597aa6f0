package domain

import "time"

// AvailableSlot represents a concrete bookable instant for a (professional, service) pair
// Единственная мутация слота: IsBooked false -> true
type AvailableSlot struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64
	SlotDate       time.Time
	IsBooked       bool
	CreatedAt      time.Time
}

// SlotKey identity of a slot: (professional, service, instant)
type SlotKey struct {
	ProfessionalID int64
	ServiceID      int64
	SlotDate       time.Time
}

// SlotsFilter фильтр для получения свободных слотов
type SlotsFilter struct {
	ProfessionalID int64      // Обязательный параметр
	ServiceID      int64      // Обязательный параметр
	From           *time.Time // Начало периода включительно (опционально)
	To             *time.Time // Конец периода включительно (опционально)
}

// DayBounds returns the first and the last millisecond of the calendar day of t in loc
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	return start, end
}
