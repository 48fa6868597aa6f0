package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/slot"
	catalogClient "github.com/m04kA/SMC-SalonAvailability/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/slots/models"
)

// Service сервис ручного управления слотами
type Service struct {
	slotRepo SlotRepository
	catalog  CatalogClient
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	catalog CatalogClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo: slotRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// CreateSlot создает слот вне расписания. Услуга должна быть активной и принадлежать мастеру
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: creating slot for professional=%d, service=%d at %s",
		req.ProfessionalID, req.ServiceID, req.SlotDate)

	if req.ProfessionalID <= 0 || req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: professionalId and serviceId must be positive", ErrInvalidInput)
	}
	if req.SlotDate.IsZero() {
		return nil, fmt.Errorf("%w: slotDate is required", ErrInvalidInput)
	}

	service, err := s.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			s.logger.Warn("CreateSlot: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("CreateSlot: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsBookableFor(req.ProfessionalID) {
		s.logger.Warn("CreateSlot: service id=%d is not bookable for professional=%d", req.ServiceID, req.ProfessionalID)
		return nil, ErrServiceNotFound
	}

	created, err := s.slotRepo.Create(ctx, req.ToDomainSlot())
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotAlreadyExists) {
			s.logger.Warn("CreateSlot: %v", err)
			return nil, ErrSlotAlreadyExists
		}
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// DeleteSlot удаляет слот. Забронированный слот тоже удаляется, бронирование остается без слота
func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", id)
	return nil
}
