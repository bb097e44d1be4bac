package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	// MongoDB connects through URI when set, otherwise the URI is assembled
	// from the individual parts.
	MongoDB struct {
		URI                     string
		Port                    string
		Host                    string
		Username                string
		Password                string
		DbName                  string
		AuthSource              string
		ConnectTimeoutInSeconds int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port           string
		Host           string
		Username       string
		Password       string
		VHost          string
		ConnectionName string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
