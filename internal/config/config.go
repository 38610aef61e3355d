package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/client"
)

type Config struct {
	HTTPAddr string `validate:"required"`
	AMQPURL  string `validate:"omitempty,url"`

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MLBackend    string        `validate:"oneof=http gemini"`
	MLEndpoint   string        `validate:"required_if=MLBackend http"`
	MLTimeout    time.Duration `validate:"gt=0"`
	GeminiAPIKey string        `validate:"required_if=MLBackend gemini"`
	GeminiModel  string

	Workers   int `validate:"min=1"`
	QueueSize int `validate:"min=1"`

	LogLevel log.Level
}

// Load reads the configuration from the environment, after loading a .env file when present.
func Load(validate *validator.Validate) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	level, err := log.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":5000"),
		AMQPURL:      os.Getenv("AMQP_URL"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		MLBackend:    getenv("ML_BACKEND", "http"),
		MLEndpoint:   os.Getenv("ML_ENDPOINT"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		LogLevel:     level,
	}

	if cfg.MLTimeout, err = getenvDuration("ML_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getenvInt("WORKERS", 4); err != nil {
		return Config{}, err
	}
	if cfg.QueueSize, err = getenvInt("QUEUE_SIZE", 100); err != nil {
		return Config{}, err
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DatabaseEnabled reports whether a brand catalogue database is configured.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func (c Config) ML() client.MLConfig {
	return client.MLConfig{
		Backend:      c.MLBackend,
		Endpoint:     c.MLEndpoint,
		Timeout:      c.MLTimeout,
		GeminiAPIKey: c.GeminiAPIKey,
		GeminiModel:  c.GeminiModel,
	}
}
