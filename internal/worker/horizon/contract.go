package horizon

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/usecase/generate_slots"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	ListProfessionalIDs(ctx context.Context) ([]int64, error)
}

// CatalogClient интерфейс клиента каталога услуг
type CatalogClient interface {
	GetProfessionalServices(ctx context.Context, professionalID int64) ([]*domain.Service, error)
}

// SlotGenerator интерфейс генератора слотов
type SlotGenerator interface {
	Execute(ctx context.Context, req *generate_slots.Request) (*generate_slots.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
