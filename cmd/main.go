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

	cancelShowHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/cancel_show"
	checkShowHoursHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/check_show_hours"
	computeSettlementHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/compute_settlement"
	createShowHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/create_show"
	createStageHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/create_stage"
	getAvailabilityHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/get_availability"
	getHoldQueueHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/get_hold_queue"
	getShowHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/get_show"
	getStageHoursHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/get_stage_hours"
	getVenueShowsHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/get_venue_shows"
	getVenueStagesHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/get_venue_stages"
	importCalendarHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/import_calendar"
	releaseHoldHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/release_hold"
	updateShowStatusHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/update_show_status"
	updateStageHoursHandler "github.com/FHLn-git/SoundPath-sub003/internal/api/handlers/update_stage_hours"
	"github.com/FHLn-git/SoundPath-sub003/internal/api/middleware"
	"github.com/FHLn-git/SoundPath-sub003/internal/config"
	showRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/show"
	stageRepo "github.com/FHLn-git/SoundPath-sub003/internal/infra/storage/stage"
	labelServiceClient "github.com/FHLn-git/SoundPath-sub003/internal/integrations/labelservice"
	showsService "github.com/FHLn-git/SoundPath-sub003/internal/service/shows"
	stagesService "github.com/FHLn-git/SoundPath-sub003/internal/service/stages"
	computeSettlementUC "github.com/FHLn-git/SoundPath-sub003/internal/usecase/compute_settlement"
	getAvailabilityUC "github.com/FHLn-git/SoundPath-sub003/internal/usecase/get_availability"
	importCalendarUC "github.com/FHLn-git/SoundPath-sub003/internal/usecase/import_calendar"
	"github.com/FHLn-git/SoundPath-sub003/pkg/dbmetrics"
	"github.com/FHLn-git/SoundPath-sub003/pkg/logger"
	"github.com/FHLn-git/SoundPath-sub003/pkg/metrics"
	"github.com/FHLn-git/SoundPath-sub003/pkg/simpletxmanager"
	"github.com/FHLn-git/SoundPath-sub003/pkg/txmanager"
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

	log.Info("Starting SoundPath venue scheduling service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем клиента LabelService (A&R-половина SoundPath)
	labelClient := labelServiceClient.NewClient(
		cfg.LabelService.URL,
		time.Duration(cfg.LabelService.Timeout)*time.Second,
		log,
	)
	log.Info("LabelService client initialized (url=%s, timeout=%ds)",
		cfg.LabelService.URL, cfg.LabelService.Timeout)

	// Интерфейс transaction manager, общий для сервисов и use cases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		showRepository  *showRepo.Repository
		stageRepository *stageRepo.Repository
		txMgr           TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		showRepository = showRepo.NewRepository(wrappedDB)
		stageRepository = stageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		showRepository = showRepo.NewRepository(db)
		stageRepository = stageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	showsSvc := showsService.NewService(showRepository, txMgr, log)
	stagesSvc := stagesService.NewService(stageRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(showRepository, log)
	computeSettlementUseCase := computeSettlementUC.NewUseCase(showRepository, labelClient, txMgr, log)
	importCalendarUseCase := importCalendarUC.NewUseCase(showRepository, stageRepository, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	computeSettlement := computeSettlementHandler.NewHandler(computeSettlementUseCase, log)
	importCalendar := importCalendarHandler.NewHandler(importCalendarUseCase, log)
	createShow := createShowHandler.NewHandler(showsSvc, log)
	getShow := getShowHandler.NewHandler(showsSvc, log)
	getVenueShows := getVenueShowsHandler.NewHandler(showsSvc, log)
	updateShowStatus := updateShowStatusHandler.NewHandler(showsSvc, log)
	cancelShow := cancelShowHandler.NewHandler(showsSvc, log)
	getHoldQueue := getHoldQueueHandler.NewHandler(showsSvc, log)
	releaseHold := releaseHoldHandler.NewHandler(showsSvc, log)
	createStage := createStageHandler.NewHandler(stagesSvc, log)
	getVenueStages := getVenueStagesHandler.NewHandler(stagesSvc, log)
	getStageHours := getStageHoursHandler.NewHandler(stagesSvc, log)
	updateStageHours := updateStageHoursHandler.NewHandler(stagesSvc, log)
	checkShowHours := checkShowHoursHandler.NewHandler(stagesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка шоу
	api.HandleFunc("/shows/{showId}", getShow.Handle).Methods(http.MethodGet)

	// Очередь холдов площадки на дату
	api.HandleFunc("/venues/{venueId}/hold-queue", getHoldQueue.Handle).Methods(http.MethodGet)

	// Рабочие часы сцены
	api.HandleFunc("/stages/{stageId}", getStageHours.Handle).Methods(http.MethodGet)

	// Проверка таймингов шоу против часов сцены
	api.HandleFunc("/stages/{stageId}/check-hours", checkShowHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Avails ---
	// Подбор свободных дат площадки
	protected.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Шоу ---
	// Создание шоу
	protected.HandleFunc("/shows", createShow.Handle).Methods(http.MethodPost)

	// Шоу площадки с фильтрацией
	protected.HandleFunc("/venues/{venueId}/shows", getVenueShows.Handle).Methods(http.MethodGet)

	// Смена статуса шоу
	protected.HandleFunc("/shows/{showId}/status", updateShowStatus.Handle).Methods(http.MethodPatch)

	// Отмена шоу
	protected.HandleFunc("/shows/{showId}/cancel", cancelShow.Handle).Methods(http.MethodPatch)

	// Снятие холда с автопромоцией очереди
	protected.HandleFunc("/shows/{showId}/release-hold", releaseHold.Handle).Methods(http.MethodPost)

	// --- Settlement ---
	// Предварительный расчёт выплаты
	protected.HandleFunc("/shows/{showId}/settlement/preview", computeSettlement.HandlePreview).Methods(http.MethodPost)

	// Финализация расчёта
	protected.HandleFunc("/shows/{showId}/settlement/finalize", computeSettlement.HandleFinalize).Methods(http.MethodPost)

	// --- Импорт календаря ---
	protected.HandleFunc("/venues/{venueId}/calendar-import", importCalendar.Handle).Methods(http.MethodPost)

	// --- Сцены ---
	// Создание сцены
	protected.HandleFunc("/stages", createStage.Handle).Methods(http.MethodPost)

	// Список сцен площадки
	protected.HandleFunc("/venues/{venueId}/stages", getVenueStages.Handle).Methods(http.MethodGet)

	// Обновление рабочих часов
	protected.HandleFunc("/stages/{stageId}/hours", updateStageHours.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
