package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// UseCase use case для получения свободных слотов
type UseCase struct {
	slotRepo SlotRepository
	location *time.Location
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		slotRepo: slotRepo,
		location: location,
		logger:   logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Если задана дата, возвращаются слоты с 00:00:00.000 до 23:59:59.999 этого дня включительно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	filter := domain.SlotsFilter{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
	}

	if req.Date != nil {
		y, m, d := req.Date.Date()
		from, to := domain.DayBounds(time.Date(y, m, d, 12, 0, 0, 0, uc.location), uc.location)
		filter.From = &from
		filter.To = &to
	}

	slots, err := uc.slotRepo.ListAvailable(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots professional=%d service=%d: %v",
			req.ProfessionalID, req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d: %d free slots",
		req.ProfessionalID, req.ServiceID, len(slots))

	return &Response{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Slots:          slots,
	}, nil
}
