package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"9446"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	BankName        string        `envconfig:"BANK_NAME" default:"ABC Bank"`
	DefaultLocale   string        `envconfig:"DEFAULT_LOCALE" default:"en-US"`
	OperatorWorkers int           `envconfig:"OPERATOR_WORKERS" default:"1"`
	AccrualEnabled  bool          `envconfig:"ACCRUAL_ENABLED" default:"true"`
	AccrualInterval time.Duration `envconfig:"ACCRUAL_INTERVAL" default:"24h"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults suit a single local process.
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("envconfig.Process: %w", err)
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Level is the parsed LogLevel.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if c.OperatorWorkers < 1 {
		return errors.New("OPERATOR_WORKERS: must be at least 1")
	}

	if c.AccrualEnabled && c.AccrualInterval <= 0 {
		return errors.New("ACCRUAL_INTERVAL: must be positive")
	}

	if _, err := ledger.ResolveCurrency(c.DefaultLocale); err != nil {
		return fmt.Errorf("DEFAULT_LOCALE: %w", err)
	}

	return nil
}
