package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds the runtime settings read from the environment (and .env when present).
type Config struct {
	Port            string        `env:"PORT" env-default:"3001" validate:"required,numeric"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s" validate:"gt=0"`

	StoreDriver string `env:"STORE_DRIVER" env-default:"mongo" validate:"oneof=mongo memory"`
	MongoURI    string `env:"MONGODB_URI" validate:"required_if=StoreDriver mongo"`
	DBName      string `env:"DB_NAME" env-default:"feedback" validate:"required"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json" validate:"oneof=json console"`

	DisplayTimezone string `env:"DISPLAY_TIMEZONE" env-default:"Local"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	RateLimitRPS       float64  `env:"RATE_LIMIT_RPS" env-default:"20" validate:"gte=0"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" env-default:"40" validate:"gte=1"`

	// Honour X-Forwarded-For / X-Real-IP only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" env-default:"false"`

	// Email notifications are sent only when an API key is configured.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromEmail    string `env:"FROM_EMAIL" validate:"required_with=ResendAPIKey"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads .env (if any), the process environment and validates the result.
func Load() (*Config, error) {
	// .env is optional; in production the variables are set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Location resolves DisplayTimezone, falling back to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.DisplayTimezone == "" || c.DisplayTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
