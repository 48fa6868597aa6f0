package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsActiveAt(ctx context.Context, professionalID int64, at time.Time) (bool, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailableSlot, error)
	GetByKey(ctx context.Context, key domain.SlotKey) (*domain.AvailableSlot, error)
	MarkBooked(ctx context.Context, id int64) error
}

// CatalogClient интерфейс клиента CatalogService
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик конфликтов бронирования (может быть nil)
type Metrics interface {
	IncBookingConflict(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
