package get_business_hours

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
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

// Handle GET /api/v1/professionals/{professionalId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := strconv.ParseInt(mux.Vars(r)["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /professionals/{id}/business-hours - Invalid professional ID: %v", mux.Vars(r)["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	hours, err := h.service.GetWeeklyHours(r.Context(), professionalID)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/business-hours - Failed to get hours: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals/{id}/business-hours - Hours retrieved: professional_id=%d, windows=%d",
		professionalID, len(hours.Hours))
	handlers.RespondJSON(w, http.StatusOK, hours)
}
