package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// devJWTSecret is the placeholder signing key. Only development may run with it.
const devJWTSecret = "your-secret-key"

type Config struct {
	App struct {
		Name        string `envconfig:"APP_NAME" default:"Invierte Ya"`
		Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
		Environment string `envconfig:"APP_ENV" default:"development"`
		Port        int    `envconfig:"PORT" default:"8080"`
		LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
		SeedFunds   bool   `envconfig:"SEED_FUNDS" default:"false"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"funds"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	JWT struct {
		Secret string        `envconfig:"JWT_SECRET_KEY" default:"your-secret-key"`
		TTL    time.Duration `envconfig:"JWT_TTL" default:"30m"`
	}

	Redis struct {
		// Empty address disables the stream sink; notifications are then only logged.
		Addr     string `envconfig:"REDIS_ADDR" default:""`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
		Stream   string `envconfig:"REDIS_NOTIFICATION_STREAM" default:"notifications"`
	}

	Account struct {
		InitialBalance decimal.Decimal `envconfig:"INITIAL_USER_BALANCE" default:"500000"`
	}

	Deposit struct {
		Min decimal.Decimal `envconfig:"MIN_DEPOSIT_AMOUNT" default:"10000"`
		Max decimal.Decimal `envconfig:"MAX_DEPOSIT_AMOUNT" default:"10000000"`
	}

	Movement struct {
		ConflictAttempts int `envconfig:"BALANCE_CONFLICT_ATTEMPTS" default:"3"`
	}

	RateLimit struct {
		RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
		Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Development reports whether development-only endpoints such as catalog seeding are exposed.
func (c *Config) Development() bool {
	return c.App.Environment == "development"
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if !cfg.Development() && cfg.JWT.Secret == devJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be set when APP_ENV is %q", cfg.App.Environment)
	}

	if cfg.Deposit.Min.GreaterThan(cfg.Deposit.Max) {
		return nil, fmt.Errorf("deposit bounds: min %s exceeds max %s", cfg.Deposit.Min, cfg.Deposit.Max)
	}

	return &cfg, nil
}
