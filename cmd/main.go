package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/create_booking"
	createSlotHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_business_hours"
	getProfessionalBookingsHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_professional_bookings"
	getSlotHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/get_slot"
	setBusinessHoursHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/set_business_hours"
	updateBookingStatusHandler "github.com/m04kA/SMC-SalonAvailability/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-SalonAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAvailability/internal/config"
	bookingRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/booking"
	hoursRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/business_hours"
	slotRepo "github.com/m04kA/SMC-SalonAvailability/internal/infra/storage/slot"
	catalogServiceClient "github.com/m04kA/SMC-SalonAvailability/internal/integrations/catalogservice"
	bookingsService "github.com/m04kA/SMC-SalonAvailability/internal/service/bookings"
	businessHoursService "github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours"
	slotsService "github.com/m04kA/SMC-SalonAvailability/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonAvailability/internal/worker/horizon"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
	"github.com/m04kA/SMC-SalonAvailability/pkg/metrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonAvailability...")
	log.Info("Configuration loaded from config.toml (timezone=%s)", cfg.Slots.Location())

	// Инициализируем метрики (если включены). nil отключает сбор во всех обертках
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopCh)
	txMgr := txmanager.New(wrappedDB)

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	hoursRepository := hoursRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	hoursSvc := businessHoursService.NewService(hoursRepository, txMgr, log)
	slotSvc := slotsService.NewService(slotRepository, catalogClient, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		hoursRepository,
		slotRepository,
		catalogClient,
		cfg.Slots.Location(),
		cfg.Slots.MaxGenerateDays,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		cfg.Slots.Location(),
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		catalogClient,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	setBusinessHours := setBusinessHoursHandler.NewHandler(hoursSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getProfessionalBookings := getProfessionalBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельное расписание мастера
	api.HandleFunc("/professionals/{professionalId}/business-hours",
		getBusinessHours.Handle).Methods(http.MethodGet)

	// Свободные слоты мастера по услуге
	api.HandleFunc("/professionals/{professionalId}/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (с ограничением частоты по IP)
	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.RunCleanup(stopCh)
		createBookingRoute = limiter.Limit(createBookingRoute)
		log.Info("Rate limit enabled for POST /bookings (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	api.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID и X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// --- Расписание и слоты ---
	admin.HandleFunc("/professionals/{professionalId}/business-hours",
		setBusinessHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{professionalId}/services/{serviceId}/slots/generate",
		generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/professionals/{professionalId}/bookings",
		getProfessionalBookings.Handle).Methods(http.MethodGet)

	// Фоновая догенерация слотов на горизонт
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	if cfg.Slots.WorkerEnabled {
		worker := horizon.NewWorker(
			hoursRepository,
			catalogClient,
			generateSlotsUseCase,
			cfg.Slots.Location(),
			horizon.Config{
				Days:     cfg.Slots.HorizonDays,
				Interval: time.Duration(cfg.Slots.HorizonInterval) * time.Second,
			},
			log,
		)
		go func() {
			defer close(workerDone)
			worker.Run(workerCtx)
		}()
	} else {
		close(workerDone)
		log.Info("Horizon worker disabled")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopWorker()
	<-workerDone

	// Останавливаем сбор метрик connection pool и очистку лимитеров
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
