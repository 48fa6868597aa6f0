package domain

// Service is a catalog service offered by a professional (read-only here)
type Service struct {
	ID              int64
	ProfessionalID  int64
	Name            string
	Price           float64
	DurationMinutes int
	IsActive        bool
}

// IsBookableFor returns true if the service is active, has a positive duration
// and belongs to the given professional
func (s *Service) IsBookableFor(professionalID int64) bool {
	return s.IsActive && s.DurationMinutes > 0 && s.ProfessionalID == professionalID
}
