package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Base URL of the storefront REST API, no trailing slash.
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// Directory for locally persisted state (search history, session record).
	StateDir string `mapstructure:"STATE_DIR"`

	// Port the fixture API server listens on.
	HTTPPort int `mapstructure:"HTTP_PORT"`
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("STATE_DIR", ".storefront")
	v.SetDefault("HTTP_PORT", 8080)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
