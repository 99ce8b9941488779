package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/covercraft/internal/api/shared"
	"github.com/phrazzld/covercraft/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	var traceID string
	handler := TraceMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, traceID, 32)

	entries, err := buf.GetLogEntries()
	assert.NoError(t, err)
	for _, entry := range entries {
		assert.Equal(t, traceID, entry["trace_id"])
	}
	logger.AssertLogContains(t, buf, "request started")
	logger.AssertLogContains(t, buf, "inside handler")
}

func TestTraceMiddleware_UniquePerRequest(t *testing.T) {
	var ids []string
	handler := TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, shared.GetTraceID(r.Context()))
	}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}
