package business_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	ReplaceForProfessional(ctx context.Context, professionalID int64, hours []*domain.BusinessHours) ([]*domain.BusinessHours, error)
	GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.BusinessHours, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
