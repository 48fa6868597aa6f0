package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListAvailable получает свободные слоты по фильтру, по возрастанию времени
	ListAvailable(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
