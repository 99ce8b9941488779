package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/covercraft/internal/billing"
	"github.com/phrazzld/covercraft/internal/config"
	"github.com/phrazzld/covercraft/internal/coverletter"
	"github.com/phrazzld/covercraft/internal/generation"
	"github.com/phrazzld/covercraft/internal/platform/gemini"
	"github.com/phrazzld/covercraft/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Session collaborators
	generator generation.Generator
	checkout  coverletter.Checkout
	prompt    *coverletter.PromptBuilder

	sessions *store.SessionStore
	sweeper  *store.Sweeper
}

// newApplication creates the application with the Gemini generator and the
// stub checkout.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)

	checkout, err := billing.NewStubCheckout(logger.With("component", "checkout"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize checkout: %w", err)
	}

	return newApplicationWithDeps(cfg, logger, generator, checkout)
}

// newApplicationWithDeps wires the application around the given generator
// and checkout.
func newApplicationWithDeps(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
	checkout coverletter.Checkout,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
		checkout:  checkout,
	}

	var err error
	if cfg.LLM.PromptTemplatePath != "" {
		app.prompt, err = coverletter.LoadPromptBuilder(cfg.LLM.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load prompt template: %w", err)
		}
		logger.Info("custom prompt template loaded", "path", cfg.LLM.PromptTemplatePath)
	} else {
		app.prompt = coverletter.DefaultPromptBuilder()
	}

	// Fail at startup rather than on the first visitor.
	if _, err := app.newSession(); err != nil {
		return nil, fmt.Errorf("invalid session configuration: %w", err)
	}

	app.sessions, err = store.NewSessionStore(app.newSession, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	app.sweeper = store.NewSweeper(app.sessions, store.SweeperConfig{
		IdleTTL: app.sessionIdleTTL(),
	}, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// sessionOptions maps configuration onto session options.
func (app *application) sessionOptions() coverletter.Options {
	return coverletter.Options{
		Model:          app.config.LLM.ModelName,
		InitialCredits: app.config.Credits.Initial,
		RefillCredits:  app.config.Credits.Refill,
		CopyResetDelay: time.Duration(app.config.Copy.ResetDelayMS) * time.Millisecond,
	}
}

func (app *application) sessionIdleTTL() time.Duration {
	return time.Duration(app.config.Server.SessionIdleMinutes) * time.Minute
}

// newSession is the store's session factory.
func (app *application) newSession() (*coverletter.Session, error) {
	return coverletter.NewSession(coverletter.Dependencies{
		Generator: app.generator,
		Checkout:  app.checkout,
		Prompt:    app.prompt,
		Logger:    app.logger.With("component", "session"),
	}, app.sessionOptions())
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	app.sweeper.Start()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.sweeper != nil {
		app.sweeper.Stop()
	}
	if app.sessions != nil {
		app.sessions.Close()
	}

	app.logger.Info("Application shutdown completed")
}
