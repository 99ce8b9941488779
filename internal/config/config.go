package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Credits CreditsConfig `mapstructure:"credits" validate:"required"`
	Copy    CopyConfig    `mapstructure:"copy"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// SessionIdleMinutes is how long an untouched browser session is kept in memory.
	SessionIdleMinutes int `mapstructure:"session_idle_minutes" validate:"gt=0"`
	// CookieSecure marks the session cookie HTTPS-only.
	CookieSecure bool `mapstructure:"cookie_secure"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
	// PromptTemplatePath overrides the built-in cover letter prompt when set.
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
}

// CreditsConfig controls the per-session credit counter.
type CreditsConfig struct {
	Initial int `mapstructure:"initial" validate:"gte=0"`
	// Refill is granted by the stubbed subscription action.
	Refill int `mapstructure:"refill" validate:"gt=0"`
}

// CopyConfig controls the copy-confirmation flag.
type CopyConfig struct {
	ResetDelayMS int `mapstructure:"reset_delay_ms" validate:"gt=0"`
}
