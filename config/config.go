package config

import (
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DotEnvFile is loaded once, before the first configuration is processed.
// Variables already present in the environment take precedence.
var DotEnvFile = ".env"

var loadDotEnv = sync.OnceValue(func() error {
	err := godotenv.Load(DotEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
})

type Config struct {
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	HttpTimeout   time.Duration `envconfig:"PORTAL_HTTP_TIMEOUT" default:"15s"`
	HttpRateLimit float64       `envconfig:"PORTAL_HTTP_RATE_LIMIT" default:"10"`
	HttpRateBurst int           `envconfig:"PORTAL_HTTP_RATE_BURST" default:"5"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return Process(c)
}

// Load returns the shared configuration populated from the environment
func Load() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Process populates cfg from the environment (and the optional .env file) using its envconfig tags
func Process(cfg interface{}) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	return envconfig.Process("", cfg)
}
