package business_hours

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours/models"
)

// Service сервис для работы с недельным расписанием мастеров
type Service struct {
	hoursRepo HoursRepository
	txManager TransactionManager
	validate  *validator.Validate
	logger    Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(
	hoursRepo HoursRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		txManager: txManager,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// SetWeeklyHours заменяет расписание мастера целиком.
// Удаление старых строк и вставка новых выполняются в одной транзакции
func (s *Service) SetWeeklyHours(ctx context.Context, req *models.SetWeeklyHoursRequest) (*models.WeeklyHoursResponse, error) {
	s.logger.Info("SetWeeklyHours: replacing %d windows for professional=%d", len(req.Hours), req.ProfessionalID)

	hours, err := s.validateRequest(req)
	if err != nil {
		s.logger.Warn("SetWeeklyHours: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	var saved []*domain.BusinessHours
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.hoursRepo.ReplaceForProfessional(ctx, req.ProfessionalID, hours)
		return txErr
	})
	if err != nil {
		s.logger.Error("SetWeeklyHours: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: SetWeeklyHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWeeklyHours: saved %d windows for professional=%d", len(saved), req.ProfessionalID)
	return models.FromDomainWeeklyHours(req.ProfessionalID, saved), nil
}

// GetWeeklyHours возвращает расписание мастера, отсортированное по дню недели и началу окна
func (s *Service) GetWeeklyHours(ctx context.Context, professionalID int64) (*models.WeeklyHoursResponse, error) {
	s.logger.Info("GetWeeklyHours: fetching hours for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	hours, err := s.hoursRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetWeeklyHours: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetWeeklyHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeeklyHours(professionalID, hours), nil
}

// validateRequest проверяет теги, формат времени и пересечение окон
func (s *Service) validateRequest(req *models.SetWeeklyHoursRequest) ([]*domain.BusinessHours, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hours := req.ToDomainHours()
	for i, h := range hours {
		if !domain.IsValidDayOfWeek(h.DayOfWeek) {
			return nil, fmt.Errorf("%w: hours[%d].dayOfWeek: %d", ErrInvalidInput, i, h.DayOfWeek)
		}
		if err := h.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: hours[%d].startTime: %v", ErrInvalidInput, i, err)
		}
		if err := h.EndTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: hours[%d].endTime: %v", ErrInvalidInput, i, err)
		}
		if !h.StartTime.IsBefore(h.EndTime) {
			return nil, fmt.Errorf("%w: hours[%d]: startTime must be before endTime", ErrInvalidInput, i)
		}
	}

	for i := range hours {
		for j := i + 1; j < len(hours); j++ {
			if hours[i].Overlaps(hours[j]) {
				return nil, fmt.Errorf("%w: day %d, %s-%s and %s-%s", ErrOverlappingHours, hours[i].DayOfWeek,
					hours[i].StartTime, hours[i].EndTime, hours[j].StartTime, hours[j].EndTime)
			}
		}
	}

	return hours, nil
}
