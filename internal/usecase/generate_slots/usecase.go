package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogClient "github.com/m04kA/SMC-SalonAvailability/internal/integrations/catalogservice"
)

// UseCase use case генерации слотов из недельного расписания мастера
type UseCase struct {
	hoursRepo     BusinessHoursRepository
	slotRepo      SlotRepository
	catalogClient CatalogClient
	location      *time.Location
	maxDays       int
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором интерпретируются часы работы; maxDays - ограничение Request.Days
func NewUseCase(
	hoursRepo BusinessHoursRepository,
	slotRepo SlotRepository,
	catalogClient CatalogClient,
	location *time.Location,
	maxDays int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		hoursRepo:     hoursRepo,
		slotRepo:      slotRepo,
		catalogClient: catalogClient,
		location:      location,
		maxDays:       maxDays,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute генерирует слоты на req.Days дней начиная с req.Date.
// Неизвестная, неактивная или чужая услуга и выходной день дают пустой результат, а не ошибку.
// Повторный вызов с теми же параметрами ничего не создаёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req, uc.maxDays); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultGenerateDays
	}

	source := req.Source
	if source == "" {
		source = SourceManual
	}

	y, m, d := req.Date.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, uc.location)

	// Услуга запрашивается лениво, только если у мастера есть рабочее окно в один из дней
	var (
		service         *domain.Service
		serviceResolved bool
	)

	created := make([]*domain.AvailableSlot, 0)

	for i := 0; i < days; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, uc.location)

		hours, err := uc.hoursRepo.GetActiveByDay(ctx, req.ProfessionalID, int(day.Weekday()))
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to get business hours professional=%d day=%d: %v",
				req.ProfessionalID, day.Weekday(), err)
			return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
		}

		if len(hours) == 0 {
			continue
		}

		if !serviceResolved {
			service, err = uc.resolveService(ctx, req.ProfessionalID, req.ServiceID)
			if err != nil {
				return nil, err
			}
			serviceResolved = true
		}

		if service == nil {
			break
		}

		slots, err := uc.generateForDay(ctx, req.ProfessionalID, service, day, hours, req.NotBefore)
		if err != nil {
			return nil, err
		}
		created = append(created, slots...)
	}

	if uc.metrics != nil && len(created) > 0 {
		uc.metrics.IncSlotsGenerated(source, len(created))
	}

	uc.logger.Info("GenerateSlots: professional=%d, service=%d, from=%s, days=%d: created %d slots",
		req.ProfessionalID, req.ServiceID, first.Format(domain.DateFormat), days, len(created))

	return &Response{Slots: created}, nil
}

// resolveService возвращает nil без ошибки, если услугу нельзя использовать для генерации
func (uc *UseCase) resolveService(ctx context.Context, professionalID, serviceID int64) (*domain.Service, error) {
	service, err := uc.catalogClient.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GenerateSlots: service id=%d not found, nothing to generate", serviceID)
			return nil, nil
		}
		uc.logger.Error("GenerateSlots: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookableFor(professionalID) {
		uc.logger.Warn("GenerateSlots: service id=%d is inactive or not owned by professional=%d", serviceID, professionalID)
		return nil, nil
	}

	return service, nil
}

func (uc *UseCase) generateForDay(
	ctx context.Context,
	professionalID int64,
	service *domain.Service,
	day time.Time,
	hours []*domain.BusinessHours,
	notBefore *time.Time,
) ([]*domain.AvailableSlot, error) {
	candidates, err := expandBusinessHours(hours, day, time.Duration(service.DurationMinutes)*time.Minute)
	if err != nil {
		uc.logger.Error("GenerateSlots: invalid business hours professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to expand business hours: %v", ErrInternal, err)
	}

	if notBefore != nil {
		candidates = excludeBefore(candidates, *notBefore)
	}

	if len(candidates) == 0 {
		return []*domain.AvailableSlot{}, nil
	}

	from, to := domain.DayBounds(day, uc.location)
	existing, err := uc.slotRepo.GetSlotDates(ctx, professionalID, service.ID, from, to)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get existing slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get existing slots: %v", ErrInternal, err)
	}

	missing := excludeExisting(candidates, existing)
	if len(missing) == 0 {
		return []*domain.AvailableSlot{}, nil
	}

	slots := make([]*domain.AvailableSlot, 0, len(missing))
	for _, t := range missing {
		slots = append(slots, &domain.AvailableSlot{
			ProfessionalID: professionalID,
			ServiceID:      service.ID,
			SlotDate:       t,
			IsBooked:       false,
		})
	}

	// Параллельный генератор мог успеть вставить часть слотов: такие строки пропускаются ON CONFLICT
	created, err := uc.slotRepo.CreateBatch(ctx, slots)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to insert slots: %v", err)
		return nil, fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
	}

	return created, nil
}
