package main

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/app/drivers/messaging"
	"agenda-service/internal/app/services/agenda_api/events"
	"agenda-service/internal/app/services/core/appointments"
	"agenda-service/internal/app/services/core/availability"
	"agenda-service/internal/app/services/shared/auditqueue"
	"agenda-service/internal/app/services/shared/locker"
	"agenda-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapTheApp(&bootstrap); err != nil {
		bootstrapLog.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootstrapLog.Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Failed to shut down drivers cleanly: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	auditQueueService, err := auditqueue.NewAuditQueueService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.AuditQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Remote scheduling API
	eventClient := events.NewEventAPIClient(
		bootstrap.InternalConfig.AgendaAPI.BaseUrl,
		time.Duration(bootstrap.InternalConfig.AgendaAPI.TimeoutInSeconds)*time.Second,
		bootstrap.InternalConfig.AgendaAPI.RequestsPerSecond,
		bootstrap.Logger,
	)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(eventClient, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(availabilityUsecase, bootstrap.Logger)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		eventClient,
		lockerService,
		auditQueueService,
		time.Duration(bootstrap.InternalConfig.Scheduling.BookingLockTTLInSeconds)*time.Second,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Janitor worker
	janitor := appointments.NewJanitorWorker(
		eventClient,
		lockerService,
		auditQueueService,
		bootstrap.InternalConfig.Scheduling.JanitorCronSpec,
		bootstrap.InternalConfig.Scheduling.CancelledRetentionInDays,
		time.Duration(bootstrap.InternalConfig.Scheduling.JanitorLockTTLInSeconds)*time.Second,
		bootstrap.Logger,
	)
	if err := janitor.Start(); err != nil {
		return err
	}
	bootstrap.WorkerStop = janitor.Stop

	// Middlewares and routes
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, availabilityController, appointmentController)

	return nil
}
