package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// BusinessHoursRepository интерфейс репозитория часов работы
type BusinessHoursRepository interface {
	GetActiveByDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.BusinessHours, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetSlotDates возвращает моменты уже существующих слотов в интервале [from, to]
	GetSlotDates(ctx context.Context, professionalID, serviceID int64, from, to time.Time) ([]time.Time, error)
	// CreateBatch вставляет слоты, пропуская дубликаты, и возвращает созданные
	CreateBatch(ctx context.Context, slots []*domain.AvailableSlot) ([]*domain.AvailableSlot, error)
}

// CatalogClient интерфейс клиента CatalogService
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// Metrics счётчик созданных слотов (может быть nil)
type Metrics interface {
	IncSlotsGenerated(source string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
