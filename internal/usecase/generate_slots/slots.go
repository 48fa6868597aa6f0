package generate_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// expandBusinessHours разворачивает окна часов работы в конкретные моменты начала слотов на день day.
// Внутри каждого окна слоты идут с шагом duration от начала окна; слот создаётся только если
// целиком помещается в окно (start + duration <= end), поэтому окно длиной L даёт floor(L / duration) слотов.
// Хвост окна короче duration отбрасывается: при шаге "t < end" последний слот выходил бы за время закрытия.
// Результат отсортирован и не содержит дубликатов (окна могут касаться друг друга).
// Чистая функция: не обращается к БД и текущему времени
func expandBusinessHours(hours []*domain.BusinessHours, day time.Time, duration time.Duration) ([]time.Time, error) {
	if duration <= 0 {
		return []time.Time{}, nil
	}

	seen := make(map[int64]struct{})
	result := make([]time.Time, 0)

	for _, h := range hours {
		if !h.IsActive {
			continue
		}

		start, end, err := h.Window(day)
		if err != nil {
			return nil, err
		}

		for t := start; !t.Add(duration).After(end); t = t.Add(duration) {
			key := t.UnixNano()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, t)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })

	return result, nil
}

// excludeExisting убирает кандидатов, для которых слот уже существует
func excludeExisting(candidates []time.Time, existing []time.Time) []time.Time {
	if len(existing) == 0 {
		return candidates
	}

	taken := make(map[int64]struct{}, len(existing))
	for _, t := range existing {
		taken[t.UnixNano()] = struct{}{}
	}

	result := make([]time.Time, 0, len(candidates))
	for _, t := range candidates {
		if _, ok := taken[t.UnixNano()]; !ok {
			result = append(result, t)
		}
	}

	return result
}

// excludeBefore убирает кандидатов, начинающихся раньше from
func excludeBefore(candidates []time.Time, from time.Time) []time.Time {
	result := make([]time.Time, 0, len(candidates))
	for _, t := range candidates {
		if !t.Before(from) {
			result = append(result, t)
		}
	}
	return result
}
