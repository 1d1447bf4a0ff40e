package validator

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the validator settings that can be supplied through the
// environment.
type Config struct {
	Locale           string `env:"VALIDATOR_LOCALE" envDefault:"en"`
	DefaultFieldName string `env:"VALIDATOR_DEFAULT_FIELD_NAME" envDefault:"Value"`
}

var dotenvOnce sync.Once

// NewFromEnv creates a Validator configured from environment variables,
// loading a .env file first if one exists. Explicit options are applied after
// the environment and take precedence.
func NewFromEnv(opts ...Option) (*Validator, error) {
	dotenvOnce.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("validator: parsing environment: %w", err)
	}

	base := []Option{
		WithLocale(cfg.Locale),
		WithDefaultFieldName(cfg.DefaultFieldName),
	}
	return New(append(base, opts...)...), nil
}
