package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Причины конфликта (лейбл метрики)
const (
	conflictSlotBooked    = "slot_booked"
	conflictBookingExists = "booking_exists"
	conflictConcurrent    = "concurrent_write"
)

// Request модель запроса на создание бронирования.
// Нужно указать SlotID или BookingDate (или оба, тогда они должны совпадать)
type Request struct {
	ProfessionalID int64      `validate:"gt=0"`
	ServiceID      int64      `validate:"gt=0"`
	SlotID         *int64     `validate:"omitempty,gt=0"`
	BookingDate    *time.Time `validate:"required_without=SlotID"`
	CustomerName   string     `validate:"required"`
	CustomerPhone  string     `validate:"required,min=5,max=32"`
	CustomerEmail  *string    `validate:"omitempty,email,max=255"`
	Notes          *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	SlotID         *int64
	ProfessionalID int64
	ServiceID      int64
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  *string
	BookingDate    time.Time
	Status         domain.BookingStatus
	TotalAmount    float64
	PaymentStatus  domain.PaymentStatus
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func newResponse(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		SlotID:         b.SlotID,
		ProfessionalID: b.ProfessionalID,
		ServiceID:      b.ServiceID,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		CustomerEmail:  b.CustomerEmail,
		BookingDate:    b.BookingDate,
		Status:         b.Status,
		TotalAmount:    b.TotalAmount,
		PaymentStatus:  b.PaymentStatus,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
