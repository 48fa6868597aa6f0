package set_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours/models"
)

type BusinessHoursService interface {
	SetWeeklyHours(ctx context.Context, req *models.SetWeeklyHoursRequest) (*models.WeeklyHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
