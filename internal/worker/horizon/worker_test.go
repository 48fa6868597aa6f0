package horizon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeHoursRepo struct {
	ids []int64
	err error
}

func (f *fakeHoursRepo) ListProfessionalIDs(context.Context) ([]int64, error) {
	return f.ids, f.err
}

type fakeCatalog struct {
	services map[int64][]*domain.Service
	failFor  int64
}

func (f *fakeCatalog) GetProfessionalServices(_ context.Context, professionalID int64) ([]*domain.Service, error) {
	if professionalID == f.failFor {
		return nil, errors.New("catalog unavailable")
	}
	return f.services[professionalID], nil
}

type fakeGenerator struct {
	mu       sync.Mutex
	requests []generate_slots.Request
	failFor  int64
}

func (f *fakeGenerator) Execute(_ context.Context, req *generate_slots.Request) (*generate_slots.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, *req)
	if req.ServiceID == f.failFor {
		return nil, generate_slots.ErrInternal
	}
	return &generate_slots.Response{Slots: make([]*domain.AvailableSlot, 2)}, nil
}

func (f *fakeGenerator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func service(id, professionalID int64, active bool) *domain.Service {
	return &domain.Service{ID: id, ProfessionalID: professionalID, DurationMinutes: 60, IsActive: active}
}

func TestSweep_GeneratesForEveryActivePair(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	hours := &fakeHoursRepo{ids: []int64{1, 2}}
	catalog := &fakeCatalog{services: map[int64][]*domain.Service{
		1: {service(10, 1, true), service(11, 1, false)},
		2: {service(20, 2, true), service(21, 2, true)},
	}}
	gen := &fakeGenerator{}

	// 22:30 UTC 3 марта = 01:30 4 марта по Москве
	now := time.Date(2024, 3, 3, 22, 30, 0, 0, time.UTC)
	w := NewWorker(hours, catalog, gen, moscow, Config{Days: 7, Interval: time.Minute}, logger.NewNop()).
		WithTimeProvider(fixedTime{now: now})

	result := w.Sweep(context.Background())

	assert.Equal(t, SweepResult{Pairs: 3, Failed: 0, Created: 6}, result)
	require.Len(t, gen.requests, 3)

	seen := make(map[int64]bool)
	for _, req := range gen.requests {
		seen[req.ServiceID] = true
		assert.Equal(t, 7, req.Days)
		assert.Equal(t, generate_slots.SourceHorizon, req.Source)
		require.NotNil(t, req.NotBefore)
		assert.True(t, req.NotBefore.Equal(now))

		y, m, d := req.Date.Date()
		assert.Equal(t, 2024, y)
		assert.Equal(t, time.March, m)
		assert.Equal(t, 4, d)
	}
	assert.Equal(t, map[int64]bool{10: true, 20: true, 21: true}, seen)
}

func TestSweep_FailuresDoNotStopSweep(t *testing.T) {
	hours := &fakeHoursRepo{ids: []int64{1, 2, 3}}
	catalog := &fakeCatalog{
		services: map[int64][]*domain.Service{
			1: {service(10, 1, true)},
			3: {service(30, 3, true), service(31, 3, true)},
		},
		failFor: 2,
	}
	gen := &fakeGenerator{failFor: 30}

	w := NewWorker(hours, catalog, gen, time.UTC, Config{Days: 3}, logger.NewNop())

	result := w.Sweep(context.Background())

	assert.Equal(t, 3, result.Pairs)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 4, result.Created)
}

func TestSweep_ListError(t *testing.T) {
	gen := &fakeGenerator{}
	w := NewWorker(&fakeHoursRepo{err: errors.New("db down")}, &fakeCatalog{}, gen, time.UTC, Config{}, logger.NewNop())

	result := w.Sweep(context.Background())

	assert.Equal(t, SweepResult{}, result)
	assert.Zero(t, gen.count())
}

func TestRun_StopsOnCancel(t *testing.T) {
	hours := &fakeHoursRepo{ids: []int64{1}}
	catalog := &fakeCatalog{services: map[int64][]*domain.Service{1: {service(10, 1, true)}}}
	gen := &fakeGenerator{}

	w := NewWorker(hours, catalog, gen, time.UTC, Config{Days: 1, Interval: 10 * time.Millisecond}, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return gen.count() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
