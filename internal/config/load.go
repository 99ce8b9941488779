package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. COVERCRAFT_LLM_GEMINI_API_KEY.
const EnvPrefix = "COVERCRAFT"

// Product defaults: three free credits, a refill of ten
// from the demo subscription and a two second copy confirmation.
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultModelName          = "gemini-3-flash-preview"
	DefaultInitialCredits     = 3
	DefaultRefillCredits      = 10
	DefaultCopyResetDelayMS   = 2000
	DefaultSessionIdleMinutes = 60
)

// keys lists every configuration key so that values supplied only through
// the environment are visible to Unmarshal.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.session_idle_minutes",
	"server.cookie_secure",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.prompt_template_path",
	"credits.initial",
	"credits.refill",
	"copy.reset_delay_ms",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.session_idle_minutes", DefaultSessionIdleMinutes)
	v.SetDefault("server.cookie_secure", false)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("credits.initial", DefaultInitialCredits)
	v.SetDefault("credits.refill", DefaultRefillCredits)
	v.SetDefault("copy.reset_delay_ms", DefaultCopyResetDelayMS)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
