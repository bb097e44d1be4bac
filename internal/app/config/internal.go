package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Jenga    AppJenga    `mapstructure:"jenga"`
	Payment  AppPayment  `mapstructure:"payment"`
	Webhook  AppWebhook  `mapstructure:"webhook"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Minio    AppMinio    `mapstructure:"minio"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

// AppJenga holds the processor credentials. Leaving any of BaseUrl, Username,
// Password, ApiKey or AccountNumber empty switches the gateway to mock mode.
type AppJenga struct {
	BaseUrl                string `mapstructure:"base_url"`
	Username               string `mapstructure:"username"`
	Password               string `mapstructure:"password"`
	ApiKey                 string `mapstructure:"api_key"`
	AccountNumber          string `mapstructure:"account_number"`
	MerchantCode           string `mapstructure:"merchant_code"`
	MerchantName           string `mapstructure:"merchant_name"`
	AirlineDestinationName string `mapstructure:"airline_destination_name"`
	RequestTimeoutInSecond int    `mapstructure:"request_timeout_in_second"`
}

type AppPayment struct {
	MockCompletionDelayInSeconds int `mapstructure:"mock_completion_delay_in_seconds"`
	InitiateLockTTLInSeconds     int `mapstructure:"initiate_lock_ttl_in_seconds"`
}

type AppWebhook struct {
	JengaToken                string `mapstructure:"jenga_token"`
	MaxRequests               int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds int    `mapstructure:"max_time_requests_per_seconds"`
}

type AppRabbitMQ struct {
	AppointmentEventsQueue string `mapstructure:"appointment_events_queue"`
}

type AppMinio struct {
	ReceiptBucketName                        string `mapstructure:"receipt_bucket_name"`
	MinioPreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}
