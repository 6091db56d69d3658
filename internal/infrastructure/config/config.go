package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting. It is loaded once in main and passed
// down explicitly; nothing in the tree caches it globally.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=1h"`

	ConfirmationTTL time.Duration `env:"CONFIRMATION_TTL, default=60m"`
	BcryptCost      int           `env:"BCRYPT_COST,      default=10"`
	FrontendURL     string        `env:"FRONTEND_URL,     default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=compcar"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@compcar.local"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
