package get_professional_bookings

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/bookings/models"
)

type BookingService interface {
	ListProfessionalBookings(ctx context.Context, req *models.GetProfessionalBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
