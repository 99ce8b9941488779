package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/covercraft/internal/api/shared"
	"github.com/phrazzld/covercraft/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context, along with a
// logger carrying it. It should be applied early in the middleware chain so
// that all subsequent handlers have access to both.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
