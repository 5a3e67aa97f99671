package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/delivery/http/middlewares"
	"petfirst-service/internal/app/delivery/http/routers"
	"petfirst-service/internal/app/drivers/database"
	"petfirst-service/internal/app/drivers/logger"
	"petfirst-service/internal/app/drivers/messaging"
	"petfirst-service/internal/app/drivers/storage"
	"petfirst-service/internal/app/services/bookings"
	"petfirst-service/internal/app/services/catalog"
	"petfirst-service/internal/app/services/consultations"
	"petfirst-service/internal/app/services/pricing"
	"petfirst-service/internal/app/services/shared/payment_gateway"
	"petfirst-service/internal/app/services/shared/sms"
	"petfirst-service/internal/app/services/shared/whatsapp"
	"petfirst-service/internal/app/services/slots"
	"petfirst-service/internal/app/services/travels"
	"petfirst-service/internal/app/services/users"
	"petfirst-service/internal/app/services/webhook"

	sharedStorage "petfirst-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, location, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location, log *logrus.Logger) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Slot validation
	slotValidator := slots.NewValidator(bootstrap.InternalConfig, location)

	// Pricing
	priceStore := pricing.NewRedisPriceStore(bootstrap.Redis)
	pricingService := pricing.NewPricingService(priceStore, bootstrap.InternalConfig, bootstrap.Logger)
	pricingController := pricing.NewPricingController(bootstrap.Logger, pricingService)

	// Payment gateway
	paymentGatewayService := payment_gateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.Logger)

	// Outbound messaging
	whatsAppService, err := whatsapp.NewWhatsAppService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQWhatsAppQueue)
	if err != nil {
		log.Fatalf("Failed to initialize WhatsApp publisher: %v", err)
	}
	smsService, err := sms.NewSMSService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQSMSQueue)
	if err != nil {
		log.Fatalf("Failed to initialize SMS publisher: %v", err)
	}

	// Object storage
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	// Catalog + users (read-only lookups)
	catalogMongoRepository := catalog.NewCatalogMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)

	// Bookings
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	serviceRecordMongoRepository := bookings.NewServiceRecordMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		serviceRecordMongoRepository,
		catalogMongoRepository,
		slotValidator,
		paymentGatewayService,
		bootstrap.Logger,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Consultations
	consultationMongoRepository := consultations.NewConsultationMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	consultationUsecase := consultations.NewConsultationUsecase(
		consultationMongoRepository,
		slotValidator,
		pricingService,
		paymentGatewayService,
		bootstrap.Logger,
	)
	consultationController := consultations.NewConsultationController(bootstrap.Logger, consultationUsecase)

	// Travels
	travelMongoRepository := travels.NewTravelMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	travelUsecase := travels.NewTravelUsecase(
		travelMongoRepository,
		catalogMongoRepository,
		pricingService,
		paymentGatewayService,
		minioStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.Logger,
	)
	travelController := travels.NewTravelController(bootstrap.Logger, travelUsecase)

	// Webhook
	paymentNotifier := webhook.NewPaymentNotifier(
		userMongoRepository,
		catalogMongoRepository,
		whatsAppService,
		smsService,
		location,
		bootstrap.InternalConfig.App.AdminMobileNumber,
		bootstrap.Logger,
	)
	webhookUsecase := webhook.NewWebhookUsecase(
		bookingMongoRepository,
		consultationMongoRepository,
		travelMongoRepository,
		paymentNotifier,
		bootstrap.InternalConfig.PaymentGateway.WebhookSecret,
		bootstrap.Logger,
	)
	webhookController := webhook.NewWebhookController(bootstrap.Logger, webhookUsecase)

	// Boot-time storage preparation: the slot exclusivity index and the seeded
	// price defaults must exist before the first request.
	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := consultationMongoRepository.EnsureIndexes(bootCtx); err != nil {
		log.Fatalf("Failed to ensure consultation indexes: %v", err)
	}
	if err := pricingService.SeedDefaults(bootCtx); err != nil {
		log.Fatalf("Failed to seed pricing defaults: %v", err)
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		bookingController,
		consultationController,
		travelController,
		pricingController,
		webhookController,
	)
}
