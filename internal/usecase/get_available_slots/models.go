package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64      // ID мастера
	ServiceID      int64      // ID услуги
	Date           *time.Time // Календарный день (опционально, если nil - все будущие и прошлые свободные слоты)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ProfessionalID int64
	ServiceID      int64
	Date           *time.Time
	Slots          []*domain.AvailableSlot // По возрастанию времени, только is_booked = false
}
