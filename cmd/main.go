package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createDraftHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/create_draft"
	discardDraftHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/discard_draft"
	getAvailableSlotsHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/get_available_slots"
	getDraftHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/get_draft"
	submitAppointmentHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/submit_appointment"
	updateDraftHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/update_draft"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/config"
	draftRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/draft"
	hospitalAPIClient "github.com/m04kA/HMS-AppointmentService/internal/integrations/hospitalapi"
	draftformService "github.com/m04kA/HMS-AppointmentService/internal/service/draftform"
	unavailabilityService "github.com/m04kA/HMS-AppointmentService/internal/service/unavailability"
	getAvailableSlotsUC "github.com/m04kA/HMS-AppointmentService/internal/usecase/get_available_slots"
	submitAppointmentUC "github.com/m04kA/HMS-AppointmentService/internal/usecase/submit_appointment"
	"github.com/m04kA/HMS-AppointmentService/pkg/logger"
	"github.com/m04kA/HMS-AppointmentService/pkg/metrics"
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

	log.Info("Starting HMS-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент HospitalAPI
	hospitalClient := hospitalAPIClient.NewClient(
		cfg.HospitalAPI.URL,
		time.Duration(cfg.HospitalAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (HospitalAPI=%s timeout=%ds)",
		cfg.HospitalAPI.URL, cfg.HospitalAPI.Timeout)

	// Инициализируем хранилище черновиков (in-memory, без персистентности)
	draftRepository := draftRepo.NewRepository()

	// Инициализируем сервисы
	unavailSvc := unavailabilityService.NewService(
		hospitalClient,
		time.Duration(cfg.HospitalAPI.Timeout)*time.Second,
		log,
	)
	draftformSvc := draftformService.NewService(
		draftRepository,
		unavailSvc,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(hospitalClient, log)
	submitAppointmentUseCase := submitAppointmentUC.NewUseCase(
		draftRepository,
		hospitalClient,
		unavailSvc,
		log,
	)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(draftformSvc, log)
	getDraft := getDraftHandler.NewHandler(draftformSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftformSvc, log)
	discardDraft := discardDraftHandler.NewHandler(draftformSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	submitAppointment := submitAppointmentHandler.NewHandler(submitAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Доступные слоты врача на дату
	api.HandleFunc("/doctors/{doctorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики формы записи ---
	// Открытие новой формы записи
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)

	// Текущее состояние формы
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)

	// Событие формы (выбор врача, даты, времени и т.д.)
	protected.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)

	// Отмена заполнения формы
	protected.HandleFunc("/drafts/{draftId}", discardDraft.Handle).Methods(http.MethodDelete)

	// Отправка заполненной формы
	protected.HandleFunc("/drafts/{draftId}/submit", submitAppointment.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых загрузок интервалов занятости
	unavailSvc.Wait()

	log.Info("Server stopped gracefully")
}
