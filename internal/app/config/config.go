package config

import (
	"petfirst-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "petfirst"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "travel-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			RabbitMQWhatsAppQueue:      utils.GetEnvString("APP_RABBITMQ_WHATSAPP_QUEUE", "whatsapp_outbound"),
			RabbitMQSMSQueue:           utils.GetEnvString("APP_RABBITMQ_SMS_QUEUE", "sms_outbound"),
			AdminMobileNumber:          utils.GetEnvString("APP_ADMIN_MOBILE_NUMBER", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:          utils.GetEnvString("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
			KeyID:            utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret:        utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
			WebhookSecret:    utils.GetEnvString("RAZORPAY_WEBHOOK_SECRET", ""),
			TimeoutInSeconds: utils.GetEnvInt("RAZORPAY_TIMEOUT_IN_SECONDS", 15),
		},
		Scheduling: Scheduling{
			OperatingHourStart:            utils.GetEnvInt("SCHEDULING_OPERATING_HOUR_START", 8),
			OperatingHourEnd:              utils.GetEnvInt("SCHEDULING_OPERATING_HOUR_END", 21),
			ConsultationDurationInMinutes: utils.GetEnvInt("SCHEDULING_CONSULTATION_DURATION_IN_MINUTES", 15),
			ConsultationLeadTimeInHours:   utils.GetEnvInt("SCHEDULING_CONSULTATION_LEAD_TIME_IN_HOURS", 2),
			ConsultationHorizonInDays:     utils.GetEnvInt("SCHEDULING_CONSULTATION_HORIZON_IN_DAYS", 15),
			RescheduleCutoffInMinutes:     utils.GetEnvInt("SCHEDULING_RESCHEDULE_CUTOFF_IN_MINUTES", 120),
		},
		Pricing: Pricing{
			ConsultationAmount:               utils.GetEnvInt64("PRICING_CONSULTATION_AMOUNT", 499),
			ConsultationDiscountedAmount:     utils.GetEnvInt64("PRICING_CONSULTATION_DISCOUNTED_AMOUNT", 299),
			EuthanasiaAmount:                 utils.GetEnvInt64("PRICING_EUTHANASIA_AMOUNT", 4999),
			EuthanasiaDiscountedAmount:       utils.GetEnvInt64("PRICING_EUTHANASIA_DISCOUNTED_AMOUNT", 3999),
			EuthanasiaOnlineAmount:           utils.GetEnvInt64("PRICING_EUTHANASIA_ONLINE_AMOUNT", 999),
			EuthanasiaOnlineDiscountedAmount: utils.GetEnvInt64("PRICING_EUTHANASIA_ONLINE_DISCOUNTED_AMOUNT", 699),
			TravelDomesticAmount:             utils.GetEnvInt64("PRICING_TRAVEL_DOMESTIC_AMOUNT", 2999),
			TravelInternationalAmount:        utils.GetEnvInt64("PRICING_TRAVEL_INTERNATIONAL_AMOUNT", 9999),
		},
	}
}
