package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const defaultSessionSecret = "not-so-secret-now-is-it?"

type R2Config struct {
	AccountID       string `env:"ACCOUNT_ID"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	BucketName      string `env:"BUCKET_NAME"`
	Region          string `env:"REGION" envDefault:"auto"`
}

// Enabled reports whether enough credentials are present to talk to the bucket.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID,required,notEmpty"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/api/auth/google/callback"`
}

type SessionConfig struct {
	Secret          string        `env:"SESSION_SECRET" envDefault:"not-so-secret-now-is-it?"`
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Store           string        `env:"SESSION_STORE" envDefault:"postgres"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"15m"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
}

type Config struct {
	DatabaseURL string   `env:"DB_URL,required,notEmpty"`
	Port        string   `env:"PORT" envDefault:"8080"`
	Environment string   `env:"ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	FrontendURL string   `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	CorsOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// VaultKey is a hex-encoded 32-byte key. Empty keeps secrets as the
	// client encoded them.
	VaultKey string `env:"VAULT_KEY"`

	Google  GoogleConfig
	Session SessionConfig
	R2      R2Config `envPrefix:"R2_"`
}

// IsProduction reports whether cookies must be Secure and cross-site.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// VaultKeyBytes decodes VaultKey. It returns nil when no key is configured.
func (c Config) VaultKeyBytes() ([]byte, error) {
	if c.VaultKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.VaultKey)
	if err != nil {
		return nil, fmt.Errorf("decode VAULT_KEY: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("VAULT_KEY must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// Load reads the optional env file and then parses the environment.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("no env file found", "file", envFile)
	} else {
		slog.Info("loaded env file", "file", envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Session.Secret == "" || (c.IsProduction() && c.Session.Secret == defaultSessionSecret) {
		return errors.New("SESSION_SECRET must be set in production")
	}
	switch c.Session.Store {
	case "postgres", "redis":
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if _, err := c.VaultKeyBytes(); err != nil {
		return err
	}
	return nil
}

func (c Config) CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.CorsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
