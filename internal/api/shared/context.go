package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/covercraft/internal/coverletter"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// SessionIDKey is the key for the browser session ID in the request context
	SessionIDKey ContextKey = "sessionID"

	// SessionKey is the key for the resolved *coverletter.Session
	SessionKey ContextKey = "session"
)

// SetTraceID adds a new trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a 32-character hex string.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithSession stores the session and its ID in the context.
func WithSession(ctx context.Context, id string, session *coverletter.Session) context.Context {
	ctx = context.WithValue(ctx, SessionIDKey, id)
	return context.WithValue(ctx, SessionKey, session)
}

// GetSession retrieves the session from the context.
func GetSession(ctx context.Context) (*coverletter.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*coverletter.Session)
	return session, ok && session != nil
}

// GetSessionID retrieves the session ID from the context, or "" if unset.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
