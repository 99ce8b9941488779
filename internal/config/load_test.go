package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the required API key is supplied.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"COVERCRAFT_LLM_GEMINI_API_KEY": "test-api-key",
		"COVERCRAFT_SERVER_PORT":        "",
		"COVERCRAFT_SERVER_LOG_LEVEL":   "",
		"COVERCRAFT_LLM_MODEL_NAME":     "",
		"COVERCRAFT_CREDITS_INITIAL":    "",
		"COVERCRAFT_CREDITS_REFILL":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Server.SessionIdleMinutes)
	assert.Equal(t, "gemini-3-flash-preview", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.Credits.Initial)
	assert.Equal(t, 10, cfg.Credits.Refill)
	assert.Equal(t, 2000, cfg.Copy.ResetDelayMS)
	assert.Empty(t, cfg.LLM.PromptTemplatePath)
	assert.False(t, cfg.Server.CookieSecure)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"COVERCRAFT_SERVER_PORT":          "9090",
		"COVERCRAFT_SERVER_LOG_LEVEL":     "debug",
		"COVERCRAFT_LLM_GEMINI_API_KEY":   "test-api-key",
		"COVERCRAFT_LLM_MODEL_NAME":       "gemini-2.5-flash",
		"COVERCRAFT_CREDITS_INITIAL":      "1",
		"COVERCRAFT_CREDITS_REFILL":       "25",
		"COVERCRAFT_COPY_RESET_DELAY_MS":  "500",
		"COVERCRAFT_SERVER_COOKIE_SECURE": "true",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, 1, cfg.Credits.Initial)
	assert.Equal(t, 25, cfg.Credits.Refill)
	assert.Equal(t, 500, cfg.Copy.ResetDelayMS)
	assert.True(t, cfg.Server.CookieSecure)
}

// TestLoadPromptTemplatePath verifies that an existing template file passes validation.
func TestLoadPromptTemplatePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("RESUME: {{.Resume}}"), 0o600))

	cleanup := setupEnv(t, map[string]string{
		"COVERCRAFT_LLM_GEMINI_API_KEY":       "test-api-key",
		"COVERCRAFT_LLM_PROMPT_TEMPLATE_PATH": path,
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, path, cfg.LLM.PromptTemplatePath)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing API key",
			envVars: map[string]string{
				"COVERCRAFT_SERVER_PORT":        "9090",
				"COVERCRAFT_LLM_GEMINI_API_KEY": "",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"COVERCRAFT_SERVER_PORT":        "999999",
				"COVERCRAFT_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"COVERCRAFT_SERVER_LOG_LEVEL":   "invalid-level",
				"COVERCRAFT_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Negative initial credits",
			envVars: map[string]string{
				"COVERCRAFT_CREDITS_INITIAL":    "-1",
				"COVERCRAFT_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Zero refill",
			envVars: map[string]string{
				"COVERCRAFT_CREDITS_REFILL":     "0",
				"COVERCRAFT_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Missing prompt template file",
			envVars: map[string]string{
				"COVERCRAFT_LLM_PROMPT_TEMPLATE_PATH": "/nonexistent/prompt.tmpl",
				"COVERCRAFT_LLM_GEMINI_API_KEY":       "test-api-key",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
