package generate_slots

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	catalogClient "github.com/m04kA/SMC-SalonAvailability/internal/integrations/catalogservice"
)

type fakeHoursRepo struct {
	byDay map[int][]*domain.BusinessHours
	calls int
}

func (f *fakeHoursRepo) GetActiveByDay(_ context.Context, professionalID int64, dayOfWeek int) ([]*domain.BusinessHours, error) {
	f.calls++
	result := make([]*domain.BusinessHours, 0)
	for _, h := range f.byDay[dayOfWeek] {
		if h.ProfessionalID == professionalID && h.IsActive {
			result = append(result, h)
		}
	}
	return result, nil
}

type fakeSlotRepo struct {
	mu     sync.Mutex
	nextID int64
	slots  map[domain.SlotKey]*domain.AvailableSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[domain.SlotKey]*domain.AvailableSlot)}
}

func key(professionalID, serviceID int64, at time.Time) domain.SlotKey {
	return domain.SlotKey{ProfessionalID: professionalID, ServiceID: serviceID, SlotDate: at.UTC()}
}

func (f *fakeSlotRepo) GetSlotDates(_ context.Context, professionalID, serviceID int64, from, to time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]time.Time, 0)
	for k := range f.slots {
		if k.ProfessionalID == professionalID && k.ServiceID == serviceID &&
			!k.SlotDate.Before(from) && !k.SlotDate.After(to) {
			result = append(result, k.SlotDate)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })
	return result, nil
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.AvailableSlot) ([]*domain.AvailableSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := make([]*domain.AvailableSlot, 0)
	for _, s := range slots {
		k := key(s.ProfessionalID, s.ServiceID, s.SlotDate)
		if _, ok := f.slots[k]; ok {
			continue
		}
		f.nextID++
		stored := *s
		stored.ID = f.nextID
		f.slots[k] = &stored
		created = append(created, &stored)
	}
	return created, nil
}

type fakeCatalog struct {
	services map[int64]*domain.Service
	err      error
	calls    int
}

func (f *fakeCatalog) GetService(_ context.Context, serviceID int64) (*domain.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.services[serviceID]
	if !ok {
		return nil, catalogClient.ErrServiceNotFound
	}
	return s, nil
}

type fakeMetrics struct {
	generated map[string]int
}

func (f *fakeMetrics) IncSlotsGenerated(source string, n int) {
	if f.generated == nil {
		f.generated = make(map[string]int)
	}
	f.generated[source] += n
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
