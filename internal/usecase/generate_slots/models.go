package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// Источник генерации (лейбл метрики)
const (
	SourceManual  = "manual"
	SourceHorizon = "horizon"
)

// Request модель запроса на генерацию слотов
type Request struct {
	ProfessionalID int64
	ServiceID      int64
	Date           time.Time  // Календарная дата первого дня (время и часовой пояс игнорируются)
	Days           int        // Количество дней подряд, 0 = один день
	Source         string     // Источник для метрик, по умолчанию SourceManual
	NotBefore      *time.Time // Слоты, начинающиеся раньше, не создаются (опционально)
}

// Response модель ответа: только созданные этим вызовом слоты
type Response struct {
	Slots []*domain.AvailableSlot
}
