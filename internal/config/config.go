package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting of the messenger service.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	DBDriver       string `envconfig:"DB_DRIVER" default:"sqlite3"`
	DBDSN          string `envconfig:"DB_DSN" default:"messenger.db"`
	AMQPURL        string `envconfig:"AMQP_URL" default:""`
	AMQPExchange   string `envconfig:"AMQP_EXCHANGE" default:"messenger.events"`
	Environment    string `envconfig:"ENVIRONMENT" default:"dev"`
	DebugRoutes    bool   `envconfig:"DEBUG_ROUTES" default:"false"`
	NoMessagesText string `envconfig:"NO_MESSAGES_TEXT" default:"Нет сообщений"`
	OTLPEndpoint   string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}
