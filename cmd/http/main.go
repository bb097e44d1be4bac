package main

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/delivery/http/controllers"
	"doctrack-service/internal/app/delivery/http/middlewares"
	"doctrack-service/internal/app/delivery/http/routers"
	"doctrack-service/internal/app/drivers/database"
	"doctrack-service/internal/app/drivers/logger"
	"doctrack-service/internal/app/drivers/messaging"
	"doctrack-service/internal/app/drivers/rbac"
	"doctrack-service/internal/app/drivers/storage"
	"doctrack-service/internal/app/services/core/appointments"
	"doctrack-service/internal/app/services/core/doctors"
	"doctrack-service/internal/app/services/core/patients"
	"doctrack-service/internal/app/services/core/payments"
	"doctrack-service/internal/app/services/core/receipts"
	"doctrack-service/internal/app/services/core/slots"
	"doctrack-service/internal/app/services/shared/events"
	"doctrack-service/internal/app/services/shared/locker"
	"doctrack-service/internal/app/services/shared/payment_gateway"
	"doctrack-service/internal/app/services/shared/redis"
	"doctrack-service/internal/app/services/shared/scheduler"
	minioStorage "doctrack-service/internal/app/services/shared/storage"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening",
			zap.String("address", server.Addr),
			zap.String("root_path", routers.RootPath(internalConfig)),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	clk := clock.New()
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Scheduler
	taskScheduler := scheduler.NewSchedulerService(clk, bootstrap.Logger)
	bootstrap.SchedulerStop = func() {
		if pending := taskScheduler.Pending(); pending > 0 {
			bootstrap.Logger.Warn("Dropping pending deferred tasks on shutdown", zap.Int("pending_tasks", pending))
		}
		taskScheduler.Stop()
	}

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	paymentGateway := payment_gateway.NewPaymentGateway(bootstrap.InternalConfig, clk, bootstrap.Logger)
	receiptStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	eventPublisher, err := events.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.AppointmentEventsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Warn("Event publishing disabled, falling back to no-op publisher", zap.Error(err))
		eventPublisher = events.NewNoopPublisher()
	}

	// Repositories
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := appointmentRepository.EnsureIndexes(ctx); err != nil {
		return err
	}

	// Usecases
	slotUsecase := slots.NewSlotUsecase(doctorRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		slotUsecase,
		eventPublisher,
		taskScheduler,
		clk,
		bootstrap.Logger,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentRepository,
		paymentGateway,
		lockerService,
		taskScheduler,
		eventPublisher,
		clk,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	receiptUsecase := receipts.NewReceiptUsecase(
		appointmentRepository,
		receiptStorage,
		clk,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, rbac.NewEnforcer(), bootstrap.InternalConfig)

	// Controllers
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, routers.Controllers{
		Health:      controllers.NewHealthController(paymentGateway, bootstrap.InternalConfig),
		Doctor:      controllers.NewDoctorController(bootstrap.Logger, slotUsecase, bootstrap.InternalConfig),
		Appointment: controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig),
		Payment:     controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, bootstrap.InternalConfig),
		Webhook:     controllers.NewWebhookController(bootstrap.Logger, paymentUsecase, bootstrap.InternalConfig),
		Receipt:     controllers.NewReceiptController(bootstrap.Logger, receiptUsecase, bootstrap.InternalConfig),
	})
	return nil
}
