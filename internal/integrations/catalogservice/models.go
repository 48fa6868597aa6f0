package catalogservice

import "github.com/m04kA/SMC-SalonAvailability/internal/domain"

// Service модель услуги из CatalogService
type Service struct {
	ID              int64   `json:"id"`
	ProfessionalID  int64   `json:"professional_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsActive        bool    `json:"is_active"`
}

// ToDomain конвертирует ответ каталога в доменную модель
func (s *Service) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		ProfessionalID:  s.ProfessionalID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
	}
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
