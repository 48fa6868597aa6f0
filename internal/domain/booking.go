package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a customer booking of a professional's service
type Booking struct {
	ID             int64
	SlotID         *int64 // NULL для бронирований без сгенерированного слота
	ProfessionalID int64
	ServiceID      int64
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  *string
	BookingDate    time.Time
	Status         BookingStatus
	TotalAmount    float64
	PaymentStatus  PaymentStatus
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies the professional's time
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanTransitionTo returns true if the status change is allowed
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, s := range allowedTransitions[b.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ProfessionalBookingsFilter фильтр для получения бронирований мастера
type ProfessionalBookingsFilter struct {
	ProfessionalID int64          // Обязательный параметр
	Status         *BookingStatus // Фильтр по статусу (опционально)
}
