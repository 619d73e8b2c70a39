package config

import (
	"ctchen222/Ultimate-Tic-Tac-Toe/internal/validator"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr  string    `yaml:"http-addr" env:"HTTP_ADDR" env-default:":8080" validate:"required"`
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	WebRoot   string    `yaml:"web-root" env:"WEB_ROOT"`
	Games     Games     `yaml:"games"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Games struct {
	Max           int           `yaml:"max" env:"GAMES_MAX" env-default:"1000" validate:"min=1"`
	IdleTTL       time.Duration `yaml:"idle-ttl" env:"GAMES_IDLE_TTL" env-default:"1h" validate:"gt=0"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"GAMES_SWEEP_INTERVAL" env-default:"1m" validate:"gt=0"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	Collector   string `yaml:"collector" env:"OTEL_COLLECTOR" env-default:"otel-collector:4317" validate:"required_if=Enabled true"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"ultimate-tic-tac-toe"`
	Stdout      bool   `yaml:"stdout" env:"OTEL_STDOUT" env-default:"false"`
}

// Load reads the config file at path, then applies environment overrides.
// A missing file is not an error: defaults and the environment are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
