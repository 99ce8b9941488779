package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/covercraft/internal/api"
	apiMiddleware "github.com/phrazzld/covercraft/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	pageHandler, err := api.NewPageHandler(app.sessionOptions().CopyResetDelay, app.config.Credits.Refill)
	if err != nil {
		return nil, fmt.Errorf("failed to create page handler: %w", err)
	}
	sessionHandler := api.NewSessionHandler()
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.sessions, app.sessionIdleTTL(), app.config.Server.CookieSecure)

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Resolve)

		r.Get("/", pageHandler.ServeHTTP)

		r.Route("/api", func(r chi.Router) {
			r.Get("/session", sessionHandler.GetState)
			r.Put("/session/inputs", sessionHandler.UpdateInputs)
			r.Post("/generate", sessionHandler.Generate)
			r.Post("/copy", sessionHandler.Copy)
			r.Post("/pricing/open", sessionHandler.OpenPricing)
			r.Post("/pricing/close", sessionHandler.ClosePricing)
			r.Post("/subscribe", sessionHandler.Subscribe)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
