package middleware

import (
	"net/http"
	"time"

	"github.com/phrazzld/covercraft/internal/api/shared"
	"github.com/phrazzld/covercraft/internal/platform/logger"
	"github.com/phrazzld/covercraft/internal/redact"
	"github.com/phrazzld/covercraft/internal/store"
)

// SessionCookieName is the cookie carrying the browser session ID.
const SessionCookieName = "covercraft_session"

// SessionMiddleware resolves the browser's cover letter session from its
// cookie, creating a session on first visit. The cookie is re-issued on
// every request so its expiry slides with the server-side idle window.
type SessionMiddleware struct {
	sessions *store.SessionStore
	maxAge   time.Duration
	secure   bool
}

// NewSessionMiddleware creates a SessionMiddleware. maxAge bounds the
// cookie lifetime; secure marks the cookie HTTPS-only.
func NewSessionMiddleware(sessions *store.SessionStore, maxAge time.Duration, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		maxAge:   maxAge,
		secure:   secure,
	}
}

// Resolve adds the session and its ID to the request context.
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(SessionCookieName); err == nil && store.ValidID(cookie.Value) {
			id = cookie.Value
		}
		if id == "" {
			id = store.NewID()
		}

		session, _, err := m.sessions.GetOrCreate(id)
		if err != nil {
			logger.FromContext(r.Context()).Error("failed to resolve session", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to start session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(m.maxAge.Seconds()),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := shared.WithSession(r.Context(), id, session)
		log := logger.FromContext(ctx).With("session_id", id)
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
