package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/slot"
	catalogClient "github.com/m04kA/SMC-SalonAvailability/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonAvailability/pkg/pgerr"
)

// UseCase use case для создания бронирования с проверкой конфликта
type UseCase struct {
	bookingRepo   BookingRepository
	slotRepo      SlotRepository
	catalogClient CatalogClient
	txManager     TransactionManager
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта, вставка и пометка слота выполняются в одной сериализуемой транзакции;
// уникальный индекс (professional_id, booking_date) для неотменённых бронирований страхует от гонок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (до любых обращений к БД и каталогу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: professional=%d, service=%d, slot=%v, date=%v",
		req.ProfessionalID, req.ServiceID, formatID(req.SlotID), formatDate(req.BookingDate))

	// 2. Получаем услугу (длительность и цена)
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookableFor(req.ProfessionalID) {
		uc.logger.Warn("CreateBooking: service id=%d is inactive or not owned by professional=%d",
			req.ServiceID, req.ProfessionalID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим слот, если он есть
		slot, err := uc.resolveSlot(txCtx, req)
		if err != nil {
			return err
		}

		bookingDate := slot.date

		// 3.2. Проверяем, что у мастера нет активного бронирования на это время
		exists, err := uc.bookingRepo.ExistsActiveAt(txCtx, req.ProfessionalID, bookingDate)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingConflict) {
				return uc.conflict(conflictConcurrent, err)
			}
			uc.logger.Error("CreateBooking: failed to check existing bookings: %v", err)
			return fmt.Errorf("%w: failed to check existing bookings: %v", ErrInternal, err)
		}
		if exists {
			return uc.conflict(conflictBookingExists, nil)
		}

		// 3.3. Создаём бронирование
		booking := &domain.Booking{
			SlotID:         slot.id,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			CustomerEmail:  req.CustomerEmail,
			BookingDate:    bookingDate,
			Status:         domain.StatusPending,
			TotalAmount:    service.Price,
			PaymentStatus:  domain.PaymentPending,
			Notes:          req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingConflict) {
				return uc.conflict(conflictConcurrent, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.4. Помечаем слот забронированным
		if slot.id != nil {
			if err := uc.slotRepo.MarkBooked(txCtx, *slot.id); err != nil {
				if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
					return uc.conflict(conflictSlotBooked, err)
				}
				uc.logger.Error("CreateBooking: failed to mark slot id=%d booked: %v", *slot.id, err)
				return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		// Ошибка сериализации может прийти и на COMMIT
		if !errors.Is(err, ErrConflict) && pgerr.IsSerializationFailure(err) {
			return nil, uc.conflict(conflictConcurrent, err)
		}
		if errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidInput) ||
			errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return newResponse(result), nil
}

type resolvedSlot struct {
	id   *int64
	date time.Time
}

// resolveSlot находит слот по ID или по тройке (мастер, услуга, время).
// Для бронирования по времени без сгенерированного слота возвращает id = nil
func (uc *UseCase) resolveSlot(ctx context.Context, req *Request) (resolvedSlot, error) {
	if req.SlotID != nil {
		slot, err := uc.slotRepo.GetByID(ctx, *req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", *req.SlotID)
				return resolvedSlot{}, ErrSlotNotFound
			}
			if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
				return resolvedSlot{}, uc.conflict(conflictConcurrent, err)
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", *req.SlotID, err)
			return resolvedSlot{}, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if slot.ProfessionalID != req.ProfessionalID || slot.ServiceID != req.ServiceID {
			return resolvedSlot{}, fmt.Errorf("%w: slot %d does not belong to professional %d and service %d",
				ErrInvalidInput, slot.ID, req.ProfessionalID, req.ServiceID)
		}
		if req.BookingDate != nil && !req.BookingDate.Equal(slot.SlotDate) {
			return resolvedSlot{}, fmt.Errorf("%w: bookingDate does not match slot %d", ErrInvalidInput, slot.ID)
		}
		if slot.IsBooked {
			return resolvedSlot{}, uc.conflict(conflictSlotBooked, nil)
		}

		return resolvedSlot{id: &slot.ID, date: slot.SlotDate}, nil
	}

	bookingDate := *req.BookingDate
	slot, err := uc.slotRepo.GetByKey(ctx, domain.SlotKey{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		SlotDate:       bookingDate,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return resolvedSlot{date: bookingDate}, nil
		}
		if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
			return resolvedSlot{}, uc.conflict(conflictConcurrent, err)
		}
		uc.logger.Error("CreateBooking: failed to get slot by date: %v", err)
		return resolvedSlot{}, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if slot.IsBooked {
		return resolvedSlot{}, uc.conflict(conflictSlotBooked, nil)
	}

	return resolvedSlot{id: &slot.ID, date: slot.SlotDate}, nil
}

func (uc *UseCase) conflict(reason string, cause error) error {
	if uc.metrics != nil {
		uc.metrics.IncBookingConflict(reason)
	}
	if cause != nil {
		uc.logger.Warn("CreateBooking: conflict (%s): %v", reason, cause)
		return fmt.Errorf("%w: %s: %v", ErrConflict, reason, cause)
	}
	uc.logger.Warn("CreateBooking: conflict (%s)", reason)
	return fmt.Errorf("%w: %s", ErrConflict, reason)
}

func formatID(id *int64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
