package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	slotModels "github.com/m04kA/SMC-SalonAvailability/internal/service/slots/models"
	generateSlots "github.com/m04kA/SMC-SalonAvailability/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	Date string `json:"date"`           // "2024-03-04"
	Days int    `json:"days,omitempty"` // 0 = один день
}

// GenerateSlotsResponse HTTP response model: только созданные этим вызовом слоты
type GenerateSlotsResponse struct {
	ProfessionalID int64                     `json:"professionalId"`
	ServiceID      int64                     `json:"serviceId"`
	Created        int                       `json:"created"`
	Slots          []slotModels.SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(professionalID, serviceID int64) (*generateSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
		Days:           r.Days,
		Source:         generateSlots.SourceManual,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(professionalID, serviceID int64, resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Created:        len(resp.Slots),
		Slots:          slotModels.FromDomainSlotList(resp.Slots),
	}
}
