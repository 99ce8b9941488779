// Package main implements the entry point for the CoverCraft server, which
// renders the cover letter page and performs the Gemini generation call for
// each browser session.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/covercraft/internal/config"
	"github.com/phrazzld/covercraft/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Application stopped with error", "error", err)
		log.Fatalf("Application error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"initial_credits", cfg.Credits.Initial)
	appLogger.Debug("LLM configuration",
		"api_key_present", cfg.LLM.GeminiAPIKey != "",
		"custom_prompt", cfg.LLM.PromptTemplatePath != "")

	return cfg, appLogger, nil
}
