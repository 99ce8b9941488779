package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/covercraft/internal/coverletter"
	"github.com/phrazzld/covercraft/internal/platform/logger"
	"github.com/phrazzld/covercraft/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`

	// State is the session state after the failed action, when one exists.
	State *coverletter.State `json:"state,omitempty"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
	state           *coverletter.State
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithState returns a ResponseOption that includes the session state in the
// error body so the page can render, for example, an opened pricing modal.
func WithState(state coverletter.State) ResponseOption {
	return func(opts *responseOptions) {
		opts.state = &state
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, opts ...ResponseOption) {
	traceID := GetTraceID(r.Context())
	responseOpts := applyOptions(opts)

	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
		State:   responseOpts.state,
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// Only userMessage reaches the client; err is redacted and logged.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: By default logged at DEBUG level
// - Other status codes: Logged at DEBUG level
//
// Use WithElevatedLogLevel to raise a 4xx to WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())
	responseOpts := applyOptions(opts)

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
		State:   responseOpts.state,
	})
}

func applyOptions(opts []ResponseOption) responseOptions {
	var responseOpts responseOptions
	for _, opt := range opts {
		opt(&responseOpts)
	}
	return responseOpts
}
