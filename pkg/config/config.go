package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the TaskPro backend. Signing keys are
// read once here and injected into the token issuer; token code never touches
// the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	AccessTokenKey  string        `env:"ACCESS_TOKEN_KEY"`
	RefreshTokenKey string        `env:"REFRESH_TOKEN_KEY"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"10m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	TokenIssuer     string        `env:"TOKEN_ISSUER" envDefault:"taskpro-api"`

	// PublicBaseURL is the externally reachable address confirmation links
	// are built from.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	SupportInbox  string `env:"SUPPORT_INBOX"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION" envDefault:"us-east-1"`
	S3BaseEndpoint string `env:"S3_BASE_ENDPOINT"`
	S3AccessKey    string `env:"S3_ACCESS_KEY"`
	S3SecretKey    string `env:"S3_SECRET_KEY"`
	S3PublicURL    string `env:"S3_PUBLIC_URL"`
}

// Load reads environment variables, optionally from a .env file if present.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AccessTokenKey == "" || cfg.RefreshTokenKey == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_KEY and REFRESH_TOKEN_KEY are required")
	}
	if cfg.AccessTokenKey == cfg.RefreshTokenKey {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_KEY and REFRESH_TOKEN_KEY must differ")
	}
	return cfg, nil
}
