package config

import (
	"doctrack-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                     utils.GetEnvString("MONGODB_URI", ""),
			Port:                    utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:                    utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username:                utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:                utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:                  utils.GetEnvString("MONGODB_DB_NAME", "doctrack"),
			AuthSource:              utils.GetEnvString("MONGODB_AUTH_SOURCE", "admin"),
			ConnectTimeoutInSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS", 10),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:           utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:           utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:       utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:       utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:          utils.GetEnvString("RABBITMQ_VHOST", "/"),
			ConnectionName: utils.GetEnvString("RABBITMQ_CONNECTION_NAME", "doctrack-service"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "4000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Africa/Nairobi"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CORSAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Jenga: AppJenga{
			BaseUrl:                utils.GetEnvString("JENGA_BASE_URL", ""),
			Username:               utils.GetEnvString("JENGA_USERNAME", ""),
			Password:               utils.GetEnvString("JENGA_PASSWORD", ""),
			ApiKey:                 utils.GetEnvString("JENGA_API_KEY", ""),
			AccountNumber:          utils.GetEnvString("JENGA_ACCOUNT_NUMBER", ""),
			MerchantCode:           utils.GetEnvString("JENGA_MERCHANT_CODE", ""),
			MerchantName:           utils.GetEnvString("JENGA_MERCHANT_NAME", "Tech Services"),
			AirlineDestinationName: utils.GetEnvString("JENGA_AIRLINE_DESTINATION_NAME", "Medical Services Ltd"),
			RequestTimeoutInSecond: utils.GetEnvInt("JENGA_REQUEST_TIMEOUT_IN_SECOND", 15),
		},
		Payment: AppPayment{
			MockCompletionDelayInSeconds: utils.GetEnvInt("PAYMENT_MOCK_COMPLETION_DELAY_IN_SECONDS", 3),
			InitiateLockTTLInSeconds:     utils.GetEnvInt("PAYMENT_INITIATE_LOCK_TTL_IN_SECONDS", 30),
		},
		Webhook: AppWebhook{
			JengaToken:                utils.GetEnvString("JENGA_WEBHOOK_TOKEN", ""),
			MaxRequests:               utils.GetEnvInt("WEBHOOK_MAX_REQUEST", 30),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("WEBHOOK_MAX_TIME_REQUESTS_PER_SECONDS", 60),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentEventsQueue: utils.GetEnvString("RABBITMQ_APPOINTMENT_EVENTS_QUEUE", "appointment_events"),
		},
		Minio: AppMinio{
			ReceiptBucketName:                        utils.GetEnvString("MINIO_RECEIPT_BUCKET_NAME", "receipts"),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 1),
		},
	}
}
