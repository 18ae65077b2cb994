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

	createIntervalHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/create_interval"
	deleteIntervalHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/delete_interval"
	getAvailablePeriodsHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/get_available_periods"
	getChaletIntervalsHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/get_chalet_intervals"
	getIntervalHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/get_interval"
	listIntervalsHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/list_intervals"
	updateIntervalHandler "github.com/m04kA/Chalet-AvailabilityService/internal/api/handlers/update_interval"
	"github.com/m04kA/Chalet-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/Chalet-AvailabilityService/internal/config"
	intervalRepo "github.com/m04kA/Chalet-AvailabilityService/internal/infra/storage/interval"
	chaletServiceClient "github.com/m04kA/Chalet-AvailabilityService/internal/integrations/chaletservice"
	intervalsService "github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals"
	createIntervalUC "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/create_interval"
	getAvailablePeriodsUC "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/get_available_periods"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/logger"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/metrics"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/Chalet-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting Chalet-AvailabilityService...")
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

	// Инициализируем клиент реестра шале
	chaletClient := chaletServiceClient.NewClient(
		cfg.ChaletService.URL,
		time.Duration(cfg.ChaletService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ChaletService=%s timeout=%ds)",
		cfg.ChaletService.URL, cfg.ChaletService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var intervalRepository *intervalRepo.Repository

	// Интерфейс для transaction manager (используется в usecase создания)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		intervalRepository = intervalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		intervalRepository = intervalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	intervalSvc := intervalsService.NewService(
		intervalRepository,
		chaletClient,
		log,
	)

	// Инициализируем use cases
	createIntervalUseCase := createIntervalUC.NewUseCase(
		intervalRepository,
		txMgr,
		log,
	)

	getAvailablePeriodsUseCase := getAvailablePeriodsUC.NewUseCase(
		intervalRepository,
		log,
	)

	// Инициализируем handlers
	createInterval := createIntervalHandler.NewHandler(createIntervalUseCase, log)
	getAvailablePeriods := getAvailablePeriodsHandler.NewHandler(getAvailablePeriodsUseCase, log)
	getInterval := getIntervalHandler.NewHandler(intervalSvc, log)
	listIntervals := listIntervalsHandler.NewHandler(intervalSvc, log)
	getChaletIntervals := getChaletIntervalsHandler.NewHandler(intervalSvc, log)
	updateInterval := updateIntervalHandler.NewHandler(intervalSvc, log)
	deleteInterval := deleteIntervalHandler.NewHandler(intervalSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id
	r.Use(middleware.RequestID)

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

	// Все интервалы всех шале (с развернутыми данными шале)
	api.HandleFunc("/intervals", listIntervals.Handle).Methods(http.MethodGet)

	// Интервал по ID
	api.HandleFunc("/intervals/{intervalId}", getInterval.Handle).Methods(http.MethodGet)

	// Календарь конкретного шале
	api.HandleFunc("/chalets/{chaletId}/intervals", getChaletIntervals.Handle).Methods(http.MethodGet)

	// Доступные периоды шале с опциональным окном запроса
	api.HandleFunc("/chalets/{chaletId}/available-periods", getAvailablePeriods.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание интервала (с проверкой конфликтов)
	protected.HandleFunc("/intervals", createInterval.Handle).Methods(http.MethodPost)

	// Частичное обновление интервала
	protected.HandleFunc("/intervals/{intervalId}", updateInterval.Handle).Methods(http.MethodPatch)

	// Удаление интервала
	protected.HandleFunc("/intervals/{intervalId}", deleteInterval.Handle).Methods(http.MethodDelete)

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
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
