package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Request модели

// CreateSlotRequest запрос на ручное создание слота
type CreateSlotRequest struct {
	ProfessionalID int64     `json:"professionalId"`
	ServiceID      int64     `json:"serviceId"`
	SlotDate       time.Time `json:"slotDate"` // RFC 3339
}

// ToDomainSlot конвертирует запрос в domain модель
func (r *CreateSlotRequest) ToDomainSlot() *domain.AvailableSlot {
	return &domain.AvailableSlot{
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		SlotDate:       r.SlotDate.UTC(),
		IsBooked:       false,
	}
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professionalId"`
	ServiceID      int64     `json:"serviceId"`
	SlotDate       time.Time `json:"slotDate"`
	IsBooked       bool      `json:"isBooked"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.AvailableSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:             s.ID,
		ProfessionalID: s.ProfessionalID,
		ServiceID:      s.ServiceID,
		SlotDate:       s.SlotDate,
		IsBooked:       s.IsBooked,
		CreatedAt:      s.CreatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.AvailableSlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		if item := FromDomainSlot(s); item != nil {
			result = append(result, *item)
		}
	}
	return result
}
