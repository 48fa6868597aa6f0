package slots

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailableSlot, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogClient интерфейс клиента каталога услуг
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
