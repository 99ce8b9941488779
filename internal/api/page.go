package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/phrazzld/covercraft/internal/api/shared"
	"github.com/phrazzld/covercraft/internal/coverletter"
	"github.com/phrazzld/covercraft/internal/platform/logger"
	"github.com/phrazzld/covercraft/internal/redact"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageData is the template input for the cover letter page.
type pageData struct {
	State          coverletter.State
	MaxInputLength int
	CopyResetMS    int64
	RefillCredits  int
}

// PageHandler renders the cover letter page.
type PageHandler struct {
	tmpl           *template.Template
	copyResetDelay time.Duration
	refillCredits  int
}

// NewPageHandler parses the embedded page template.
func NewPageHandler(copyResetDelay time.Duration, refillCredits int) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &PageHandler{
		tmpl:           tmpl,
		copyResetDelay: copyResetDelay,
		refillCredits:  refillCredits,
	}, nil
}

// ServeHTTP handles GET / requests
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := shared.GetSession(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgSessionUnavailable)
		return
	}

	data := pageData{
		State:          session.State(),
		MaxInputLength: MaxInputLength,
		CopyResetMS:    h.copyResetDelay.Milliseconds(),
		RefillCredits:  h.refillCredits,
	}

	// Render to a buffer so a template error never leaves a half-written page.
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		logger.FromContext(r.Context()).Error("failed to render page", "error", redact.Error(err))
		http.Error(w, msgUnexpected, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
