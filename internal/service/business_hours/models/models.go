package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/types"
)

// Request модели

// HoursEntry одно окно рабочего времени в недельном расписании
type HoursEntry struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime string `json:"startTime" validate:"required,len=5"`
	EndTime   string `json:"endTime" validate:"required,len=5"`
	IsActive  *bool  `json:"isActive,omitempty"` // по умолчанию true
}

// SetWeeklyHoursRequest запрос на замену недельного расписания.
// Пустой список очищает расписание
type SetWeeklyHoursRequest struct {
	ProfessionalID int64        `json:"-" validate:"gt=0"`
	Hours          []HoursEntry `json:"hours" validate:"dive"`
}

// ToDomainHours конвертирует запрос в domain модели
func (r *SetWeeklyHoursRequest) ToDomainHours() []*domain.BusinessHours {
	result := make([]*domain.BusinessHours, 0, len(r.Hours))
	for _, e := range r.Hours {
		isActive := true
		if e.IsActive != nil {
			isActive = *e.IsActive
		}
		result = append(result, &domain.BusinessHours{
			ProfessionalID: r.ProfessionalID,
			DayOfWeek:      e.DayOfWeek,
			StartTime:      types.TimeString(e.StartTime),
			EndTime:        types.TimeString(e.EndTime),
			IsActive:       isActive,
		})
	}
	return result
}

// Response модели

// BusinessHoursResponse окно рабочего времени
type BusinessHoursResponse struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professionalId"`
	DayOfWeek      int       `json:"dayOfWeek"`
	StartTime      string    `json:"startTime"` // "09:00"
	EndTime        string    `json:"endTime"`   // "18:00"
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// WeeklyHoursResponse недельное расписание мастера
type WeeklyHoursResponse struct {
	ProfessionalID int64                   `json:"professionalId"`
	Hours          []BusinessHoursResponse `json:"hours"`
}

// Методы конвертации

// FromDomainBusinessHours конвертирует domain модель в DTO
func FromDomainBusinessHours(h *domain.BusinessHours) *BusinessHoursResponse {
	if h == nil {
		return nil
	}

	return &BusinessHoursResponse{
		ID:             h.ID,
		ProfessionalID: h.ProfessionalID,
		DayOfWeek:      h.DayOfWeek,
		StartTime:      h.StartTime.String(),
		EndTime:        h.EndTime.String(),
		IsActive:       h.IsActive,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

// FromDomainWeeklyHours конвертирует список domain моделей в DTO
func FromDomainWeeklyHours(professionalID int64, hours []*domain.BusinessHours) *WeeklyHoursResponse {
	resp := &WeeklyHoursResponse{
		ProfessionalID: professionalID,
		Hours:          make([]BusinessHoursResponse, 0, len(hours)),
	}

	for _, h := range hours {
		if item := FromDomainBusinessHours(h); item != nil {
			resp.Hours = append(resp.Hours, *item)
		}
	}

	return resp
}
