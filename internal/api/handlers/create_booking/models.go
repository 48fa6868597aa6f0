package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Нужно указать slotId или bookingDate
type CreateBookingRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	SlotID         *int64  `json:"slotId,omitempty"`
	BookingDate    *string `json:"bookingDate,omitempty"` // RFC 3339, "2024-03-04T09:00:00Z"
	CustomerName   string  `json:"customerName"`
	CustomerPhone  string  `json:"customerPhone"`
	CustomerEmail  *string `json:"customerEmail,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	SlotID         *int64  `json:"slotId,omitempty"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	CustomerName   string  `json:"customerName"`
	CustomerPhone  string  `json:"customerPhone"`
	CustomerEmail  *string `json:"customerEmail,omitempty"`
	BookingDate    string  `json:"bookingDate"`
	Status         string  `json:"status"`
	TotalAmount    float64 `json:"totalAmount"`
	PaymentStatus  string  `json:"paymentStatus"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		SlotID:         r.SlotID,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		CustomerEmail:  r.CustomerEmail,
		Notes:          r.Notes,
	}

	if r.BookingDate != nil && *r.BookingDate != "" {
		bookingDate, err := time.Parse(time.RFC3339, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.BookingDate = &bookingDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		SlotID:         resp.SlotID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		CustomerName:   resp.CustomerName,
		CustomerPhone:  resp.CustomerPhone,
		CustomerEmail:  resp.CustomerEmail,
		BookingDate:    resp.BookingDate.Format(time.RFC3339),
		Status:         string(resp.Status),
		TotalAmount:    resp.TotalAmount,
		PaymentStatus:  string(resp.PaymentStatus),
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
