package set_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	businessHours "github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidHours          = "некорректное расписание: день 0-6, время HH:MM, начало раньше конца"
	msgOverlappingHours      = "окна рабочего времени пересекаются"
)

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professionalId}/business-hours
// Заменяет расписание целиком, пустой список очищает его
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := strconv.ParseInt(mux.Vars(r)["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("PUT /professionals/{id}/business-hours - Invalid professional ID: %v", mux.Vars(r)["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req models.SetWeeklyHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ProfessionalID = professionalID

	hours, err := h.service.SetWeeklyHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businessHours.ErrOverlappingHours):
			h.logger.Warn("PUT /professionals/{id}/business-hours - Overlapping windows: professional_id=%d, %v", professionalID, err)
			handlers.RespondBadRequest(w, msgOverlappingHours)

		case errors.Is(err, businessHours.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/business-hours - Invalid hours: professional_id=%d, %v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /professionals/{id}/business-hours - Failed to save hours: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/business-hours - Hours saved: professional_id=%d, windows=%d",
		professionalID, len(hours.Hours))
	handlers.RespondJSON(w, http.StatusOK, hours)
}
