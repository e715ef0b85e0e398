package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (service URLs, Redis)
// - default: Values common across all environments (timeouts, log settings)
// -----------------------------------------------------------------------------

type Config struct {
	Services ServicesConfig
	HTTP     HTTPConfig
	Redis    RedisConfig
	Log      LogConfig
}

// ServicesConfig holds one base URL per remote booking service.
type ServicesConfig struct {
	VenuesURL       string `envconfig:"VENUES_URL" default:"http://localhost:8081"`
	AvailabilityURL string `envconfig:"AVAILABILITY_URL" default:"http://localhost:8082"`
	UsersURL        string `envconfig:"USERS_URL" default:"http://localhost:8083"`
	ReservationsURL string `envconfig:"RESERVATIONS_URL" default:"http://localhost:8084"`
}

type HTTPConfig struct {
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Services: ServicesConfig{
			VenuesURL:       "http://localhost:18081",
			AvailabilityURL: "http://localhost:18082",
			UsersURL:        "http://localhost:18083",
			ReservationsURL: "http://localhost:18084",
		},
		HTTP: HTTPConfig{
			Timeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "16379",
		},
		Log: LogConfig{
			Level:  "error", // Error level only for tests
			Format: "text",
		},
	}
}
