package messaging

import (
	"doctrack-service/internal/app/config"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const heartbeat = 10 * time.Second

// NewRabbitMQ opens the connection appointment lifecycle events are published on.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	conn, err := amqp091.DialConfig(AMQPURL(driverConfig.RabbitMQ), amqp091.Config{
		Vhost:     driverConfig.RabbitMQ.VHost,
		Heartbeat: heartbeat,
		Properties: amqp091.Table{
			"connection_name": driverConfig.RabbitMQ.ConnectionName,
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ as %s", driverConfig.RabbitMQ.ConnectionName)
	return conn
}

func AMQPURL(cfg config.RabbitMQ) string {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   "/",
	}
	return uri.String()
}
