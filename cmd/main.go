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

	applySessionPresetHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/apply_session_preset"
	discardSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/discard_session"
	getScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_schedule"
	getSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_session"
	getWorkingSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_working_slots"
	openSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/open_session"
	saveSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/save_session"
	updateScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_schedule"
	updateSessionDayHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_session_day"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	settingsRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/settings"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

const (
	defaultConfigPath = "config.toml"

	// sessionSweepInterval период очистки истекших сессий редактирования
	sessionSweepInterval = time.Minute
)

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("SCHEDULE_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Нормализатор расписаний (каталог слотов и значения по умолчанию из [schedule])
	normalizer, err := cfg.Schedule.NewNormalizer()
	if err != nil {
		log.Fatal("Failed to build schedule normalizer: %v", err)
	}
	log.Info("Slot catalog built: interval=%dm, slots=%d, default working days=%v",
		cfg.Schedule.SlotIntervalMinutes, normalizer.Catalog().Len(), cfg.Schedule.DefaultWorkingDays)

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

	// Инициализируем репозиторий (с метриками или без)
	var settingsRepository *settingsRepo.Repository
	if cfg.Metrics.Enabled {
		settingsRepository = settingsRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopCh))
		log.Info("Database metrics collection started")
	} else {
		settingsRepository = settingsRepo.NewRepository(db)
	}

	// Инициализируем сервис
	scheduleSvc := scheduleService.NewService(
		settingsRepository,
		normalizer,
		cfg.Schedule.Preferences(),
		time.Duration(cfg.Schedule.SessionTTLMinutes)*time.Minute,
		metricsCollector,
		log,
	)
	go sweepSessions(scheduleSvc, stopCh)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getWorkingSlots := getWorkingSlotsHandler.NewHandler(scheduleSvc, log)
	openSession := openSessionHandler.NewHandler(scheduleSvc, log)
	getSession := getSessionHandler.NewHandler(scheduleSvc, log)
	updateSessionDay := updateSessionDayHandler.NewHandler(scheduleSvc, log)
	applySessionPreset := applySessionPresetHandler.NewHandler(scheduleSvc, log)
	saveSession := saveSessionHandler.NewHandler(scheduleSvc, log)
	discardSession := discardSessionHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Каноническое расписание компании
	api.HandleFunc("/companies/{companyId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Рабочие слоты на дату
	api.HandleFunc("/companies/{companyId}/schedule/slots", getWorkingSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Сохранение расписания целиком
	protected.HandleFunc("/companies/{companyId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Сессии редактирования ---
	protected.HandleFunc("/companies/{companyId}/schedule/sessions", openSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/sessions/{sessionId}", discardSession.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedule/sessions/{sessionId}/days/{day:[0-9]+}", updateSessionDay.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/schedule/sessions/{sessionId}/presets/{preset}", applySessionPreset.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/sessions/{sessionId}/save", saveSession.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи (статистика пула, очистка сессий)
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

// sweepSessions периодически удаляет истекшие сессии и обновляет метрику открытых сессий
func sweepSessions(svc *scheduleService.Service, stopCh <-chan struct{}) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.ActiveSessions()
		case <-stopCh:
			return
		}
	}
}
