package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID int64           `json:"professionalId"`
	ServiceID      int64           `json:"serviceId"`
	Date           *string         `json:"date,omitempty"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель свободного слота
type AvailableSlot struct {
	ID       int64  `json:"id"`
	SlotDate string `json:"slotDate"` // RFC 3339
}

// ToUseCaseRequest формирует запрос к use case, dateStr пустая = без фильтра по дню
func ToUseCaseRequest(professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Slots:          make([]AvailableSlot, 0, len(resp.Slots)),
	}

	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		result.Date = &date
	}

	for _, s := range resp.Slots {
		result.Slots = append(result.Slots, AvailableSlot{
			ID:       s.ID,
			SlotDate: s.SlotDate.Format(time.RFC3339),
		})
	}

	return result
}
