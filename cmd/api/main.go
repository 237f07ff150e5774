package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/carebridge/eldercare-api/internal/config"
	activityHandler "github.com/carebridge/eldercare-api/internal/handler/activity"
	appointmentHandler "github.com/carebridge/eldercare-api/internal/handler/appointment"
	authHandler "github.com/carebridge/eldercare-api/internal/handler/auth"
	"github.com/carebridge/eldercare-api/internal/handler/health"
	medicationHandler "github.com/carebridge/eldercare-api/internal/handler/medication"
	patientHandler "github.com/carebridge/eldercare-api/internal/handler/patient"
	reminderHandler "github.com/carebridge/eldercare-api/internal/handler/reminder"
	"github.com/carebridge/eldercare-api/internal/middleware"
	"github.com/carebridge/eldercare-api/internal/repository"
	"github.com/carebridge/eldercare-api/internal/repository/postgres"
	"github.com/carebridge/eldercare-api/internal/router"
	accessService "github.com/carebridge/eldercare-api/internal/service/access"
	activityService "github.com/carebridge/eldercare-api/internal/service/activity"
	appointmentService "github.com/carebridge/eldercare-api/internal/service/appointment"
	authService "github.com/carebridge/eldercare-api/internal/service/auth"
	eventService "github.com/carebridge/eldercare-api/internal/service/event"
	medicationService "github.com/carebridge/eldercare-api/internal/service/medication"
	recordService "github.com/carebridge/eldercare-api/internal/service/record"
	reminderService "github.com/carebridge/eldercare-api/internal/service/reminder"
	"github.com/carebridge/eldercare-api/pkg/auth"
	"github.com/carebridge/eldercare-api/pkg/logger"
	"github.com/carebridge/eldercare-api/pkg/messaging/redis"
	"github.com/carebridge/eldercare-api/pkg/metrics"
	"github.com/carebridge/eldercare-api/pkg/worker"
)

func main() {
	log := logger.NewLogger(&logger.Config{Level: logger.InfoLevel, Output: os.Stdout})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(postgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	accessRepo := postgres.NewPatientAccessRepository(db)
	medicationRepo := postgres.NewMedicationRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	vitalRepo := postgres.NewVitalRepository(db)
	contactRepo := postgres.NewEmergencyContactRepository(db)
	checkinRepo := postgres.NewCheckInRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	reminderRepo := postgres.NewReminderRepository(db)
	invoiceRepo := postgres.NewInvoiceRepository(db)

	// The care event feed only runs with a broker behind it; without one
	// no outbox rows are written.
	var outboxRepo repository.OutboxRepository
	if cfg.Outbox.Enabled {
		outboxRepo = postgres.NewOutboxRepository(db)
	}
	eventSvc := eventService.NewService(outboxRepo, log)

	tokenSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	authSvc := authService.NewService(userRepo, tokenSvc)
	accessSvc := accessService.NewService(accessRepo)
	medicationSvc := medicationService.NewService(medicationRepo, eventSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, eventSvc)
	activitySvc := activityService.NewService(activityRepo, eventSvc)
	reminderSvc := reminderService.NewService(reminderRepo, eventSvc)
	recordSvc := recordService.NewService(vitalRepo, contactRepo, checkinRepo, messageRepo, documentRepo, invoiceRepo)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	m := metrics.NewMetrics("eldercare")

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		health.NewHandler(db),
		m,
		log.Zerolog(),
		router.Config{
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst: cfg.RateLimit.Burst,
			FrontendOrigin: cfg.CORS.FrontendOrigin,
		},
		patientHandler.NewHandler(accessSvc, recordSvc, medicationSvc, appointmentSvc, activitySvc, reminderSvc),
		appointmentHandler.NewHandler(appointmentSvc, accessSvc),
		activityHandler.NewHandler(activitySvc, accessSvc),
		reminderHandler.NewHandler(reminderSvc, accessSvc),
		medicationHandler.NewHandler(medicationSvc, accessSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Outbox.Enabled {
		broker, err := redis.NewRedisBroker(cfg.Redis.URL)
		if err != nil {
			log.Fatal(err, "failed to connect to redis")
		}
		defer broker.Close()

		processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
			BatchSize:    cfg.Outbox.BatchSize,
			PollInterval: cfg.Outbox.PollInterval,
		}, log, m)
		go processor.Start(workerCtx)
	}

	go func() {
		log.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}
	stopWorker()

	log.Info("server exited")
}
