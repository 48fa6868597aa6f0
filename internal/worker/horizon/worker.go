package horizon

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/usecase/generate_slots"
)

// Config настройки воркера
type Config struct {
	Days     int           // Горизонт в днях, начиная с сегодняшнего
	Interval time.Duration // Период между проходами
}

// SweepResult итог одного прохода
type SweepResult struct {
	Pairs   int // Обработано пар (мастер, услуга)
	Failed  int // Пар с ошибкой генерации
	Created int // Создано слотов
}

// Worker поддерживает сгенерированные слоты на Days дней вперед
// для каждой пары (мастер, активная услуга)
type Worker struct {
	hoursRepo    HoursRepository
	catalog      CatalogClient
	generator    SlotGenerator
	location     *time.Location
	days         int
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewWorker создает новый экземпляр воркера
func NewWorker(
	hoursRepo HoursRepository,
	catalog CatalogClient,
	generator SlotGenerator,
	location *time.Location,
	cfg Config,
	logger Logger,
) *Worker {
	if cfg.Days <= 0 {
		cfg.Days = 14
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if location == nil {
		location = time.UTC
	}
	return &Worker{
		hoursRepo:    hoursRepo,
		catalog:      catalog,
		generator:    generator,
		location:     location,
		days:         cfg.Days,
		interval:     cfg.Interval,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider устанавливает провайдер времени (для тестирования)
func (w *Worker) WithTimeProvider(tp TimeProvider) *Worker {
	w.timeProvider = tp
	return w
}

// Run выполняет проход сразу, затем каждые interval до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("HorizonWorker: started, days=%d, interval=%s", w.days, w.interval)

	w.Sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("HorizonWorker: stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep догенерирует слоты для всех мастеров. Ошибка по одной паре не прерывает проход
func (w *Worker) Sweep(ctx context.Context) SweepResult {
	var result SweepResult

	professionalIDs, err := w.hoursRepo.ListProfessionalIDs(ctx)
	if err != nil {
		w.logger.Error("HorizonWorker: failed to list professionals: %v", err)
		return result
	}

	now := w.timeProvider.Now()
	today := now.In(w.location)

	for _, professionalID := range professionalIDs {
		if ctx.Err() != nil {
			return result
		}

		services, err := w.catalog.GetProfessionalServices(ctx, professionalID)
		if err != nil {
			w.logger.Warn("HorizonWorker: failed to get services of professional=%d: %v", professionalID, err)
			continue
		}

		for _, service := range services {
			if !service.IsBookableFor(professionalID) {
				continue
			}

			result.Pairs++
			resp, err := w.generator.Execute(ctx, &generate_slots.Request{
				ProfessionalID: professionalID,
				ServiceID:      service.ID,
				Date:           today,
				Days:           w.days,
				Source:         generate_slots.SourceHorizon,
				NotBefore:      &now,
			})
			if err != nil {
				result.Failed++
				w.logger.Error("HorizonWorker: generation failed professional=%d service=%d: %v",
					professionalID, service.ID, err)
				continue
			}
			result.Created += len(resp.Slots)
		}
	}

	w.logger.Info("HorizonWorker: sweep finished, pairs=%d, failed=%d, created=%d",
		result.Pairs, result.Failed, result.Created)
	return result
}
