package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/slots"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "professionalId, serviceId и slotDate обязательны"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotAlreadyExists  = "слот на это время уже существует"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrServiceNotFound):
			h.logger.Warn("POST /slots - Service not found: professional_id=%d, service_id=%d", req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, slots.ErrSlotAlreadyExists):
			h.logger.Warn("POST /slots - Slot already exists: professional_id=%d, service_id=%d", req.ProfessionalID, req.ServiceID)
			handlers.RespondConflict(w, msgSlotAlreadyExists)

		default:
			h.logger.Error("POST /slots - Failed to create slot: professional_id=%d, service_id=%d, error=%v",
				req.ProfessionalID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%d", slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
