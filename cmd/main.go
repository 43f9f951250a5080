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

	cancelScheduleHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/cancel_schedule"
	createScheduleHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/create_schedule"
	enrollMemberHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/enroll_member"
	getMemberBookingsHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_member_bookings"
	listClassesHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/list_classes"
	payBookingsHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/pay_bookings"
	registerMemberHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/register_member"
	reserveLockerHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/reserve_locker"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/config"
	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
	catalogService "github.com/m04kA/SMC-GymService/internal/service/catalog"
	membersService "github.com/m04kA/SMC-GymService/internal/service/members"
	createScheduleUC "github.com/m04kA/SMC-GymService/internal/usecase/create_schedule"
	enrollMemberUC "github.com/m04kA/SMC-GymService/internal/usecase/enroll_member"
	payBookingsUC "github.com/m04kA/SMC-GymService/internal/usecase/pay_bookings"
	"github.com/m04kA/SMC-GymService/pkg/logger"
	"github.com/m04kA/SMC-GymService/pkg/metrics"
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

	log.Info("Starting SMC-GymService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище и наполняем зал из конфигурации
	repo := gymRepo.NewRepository()
	if err := seedGym(repo, cfg.Seed); err != nil {
		log.Fatal("Failed to seed gym: %v", err)
	}
	log.Info("Gym seeded: %d rooms, %d trainers, %d classes",
		len(cfg.Seed.Rooms), len(cfg.Seed.Trainers), len(cfg.Seed.Classes))

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(repo, cfg.Policy.CancelCascade, log)
	membersSvc := membersService.NewService(repo, log)

	// Инициализируем use cases
	enrollMemberUseCase := enrollMemberUC.NewUseCase(repo, metricsCollector, log)
	createScheduleUseCase := createScheduleUC.NewUseCase(repo, log)
	payBookingsUseCase := payBookingsUC.NewUseCase(repo, cfg.Pricing, metricsCollector, log)

	// Инициализируем handlers
	listClasses := listClassesHandler.NewHandler(catalogSvc, log)
	registerMember := registerMemberHandler.NewHandler(membersSvc, log)
	getMemberBookings := getMemberBookingsHandler.NewHandler(membersSvc, log)
	enrollMember := enrollMemberHandler.NewHandler(enrollMemberUseCase, log)
	payBookings := payBookingsHandler.NewHandler(payBookingsUseCase, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	cancelSchedule := cancelScheduleHandler.NewHandler(catalogSvc, log)
	reserveLocker := reserveLockerHandler.NewHandler(membersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог занятий
	api.HandleFunc("/classes", listClasses.Handle).Methods(http.MethodGet)

	// Участники
	api.HandleFunc("/members", registerMember.Handle).Methods(http.MethodPost)
	api.HandleFunc("/members/{memberId}/bookings", getMemberBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/members/{memberId}/payments", payBookings.Handle).Methods(http.MethodPost)

	// Записи на занятия
	api.HandleFunc("/enrollments", enrollMember.Handle).Methods(http.MethodPost)

	// Расписания
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{scheduleId}/cancel", cancelSchedule.Handle).Methods(http.MethodPatch)

	// Шкафчики
	api.HandleFunc("/lockers/reservations", reserveLocker.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}

// seedGym наполняет хранилище комнатами, тренерами и классами из конфигурации.
// Участники и расписания создаются через API.
func seedGym(repo *gymRepo.Repository, seed config.Seed) error {
	for _, room := range seed.Rooms {
		created := repo.CreateRoom(room.Name, room.Capacity)
		created.CreateLockers(room.LockersNormal, room.LockersVIP)
	}
	for _, tr := range seed.Trainers {
		tier, err := domain.ParseTrainerTier(tr.Tier)
		if err != nil {
			return fmt.Errorf("trainer %q: %w", tr.Name, err)
		}
		repo.CreateTrainer(tr.CitizenID, tr.Name, tr.Age, tier, tr.Specialization)
	}
	for _, class := range seed.Classes {
		repo.CreateClass(class.Name, class.Detail)
	}
	return nil
}
