package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// AppConfig carries process-level settings. Values are layered: built-in
// defaults, then an optional YAML file, then COASTFIRE_* environment
// variables, each overriding the last.
type AppConfig struct {
	LogLevel       string  `yaml:"log_level" env:"COASTFIRE_LOG_LEVEL"`
	LogJSON        bool    `yaml:"log_json" env:"COASTFIRE_LOG_JSON"`
	Currency       string  `yaml:"currency" env:"COASTFIRE_CURRENCY"`
	SnapshotDir    string  `yaml:"snapshot_dir" env:"COASTFIRE_SNAPSHOT_DIR"`
	WithdrawalRate float64 `yaml:"withdrawal_rate" env:"COASTFIRE_WITHDRAWAL_RATE"`
}

// DefaultAppConfig returns the built-in settings
func DefaultAppConfig() AppConfig {
	return AppConfig{
		LogLevel:       "info",
		LogJSON:        false,
		Currency:       "INR",
		SnapshotDir:    ".",
		WithdrawalRate: 0.04,
	}
}

// LoadAppConfig layers an optional YAML file and the environment over the
// defaults. An empty path skips the file layer.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.WithdrawalRate <= 0 {
		return cfg, fmt.Errorf("withdrawal_rate must be positive")
	}
	if cfg.Currency == "" {
		return cfg, fmt.Errorf("currency is required")
	}

	return cfg, nil
}
