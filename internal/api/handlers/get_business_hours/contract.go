package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours/models"
)

type BusinessHoursService interface {
	GetWeeklyHours(ctx context.Context, professionalID int64) (*models.WeeklyHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
