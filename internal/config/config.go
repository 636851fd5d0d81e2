// Package config loads settings for the listclean command from a .env
// file, LISTCLEAN_* environment variables and defaults.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LISTCLEAN"

// Config holds the command configuration.
type Config struct {
	APIKey         string        `mapstructure:"api_key" validate:"required"`
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int           `mapstructure:"timeout_seconds" validate:"gte=1"`
	Timeout        time.Duration `mapstructure:"-"`
	Retries        int           `mapstructure:"retries" validate:"gte=0,lte=10"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
}

// Load reads configuration. envFile is optional; a missing file is ignored.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("api_key", "")
	v.SetDefault("base_url", "https://api.listclean.xyz/v1/")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("retries", 0)
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
