package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/covercraft/internal/api/shared"
	"github.com/phrazzld/covercraft/internal/coverletter"
	"github.com/phrazzld/covercraft/internal/platform/logger"
)

// SessionHandler exposes the browser's cover letter session over JSON.
// It expects the session middleware to have put the session in the
// request context.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GetState handles GET /api/session requests
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, session.State())
}

// UpdateInputs handles PUT /api/session/inputs requests
func (h *SessionHandler) UpdateInputs(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, session.SetInputs(req.Resume, req.JobDescription))
}

// Generate handles POST /api/generate requests
func (h *SessionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	// A generation runs to completion once started. The session outlives
	// the request, so a reload picks up the letter.
	ctx := context.WithoutCancel(r.Context())

	session.SetInputs(req.Resume, req.JobDescription)
	state, err := session.Generate(ctx, req.Resume, req.JobDescription)
	if err != nil {
		respondWithSessionError(w, r, err, state)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, state)
}

// Copy handles POST /api/copy requests
func (h *SessionHandler) Copy(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	clip := coverletter.NewClientClipboard()
	state, err := session.Copy(r.Context(), clip)
	if err != nil {
		respondWithSessionError(w, r, err, state)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CopyResponse{
		Text:  clip.Last(),
		State: state,
	})
}

// OpenPricing handles POST /api/pricing/open requests
func (h *SessionHandler) OpenPricing(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, session.OpenPricing())
}

// ClosePricing handles POST /api/pricing/close requests
func (h *SessionHandler) ClosePricing(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, session.ClosePricing())
}

// Subscribe handles POST /api/subscribe requests
func (h *SessionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	state, err := session.Subscribe(r.Context())
	if err != nil {
		respondWithSessionError(w, r, err, state)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, state)
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*coverletter.Session, bool) {
	session, ok := shared.GetSession(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error("no session in request context", "path", r.URL.Path)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgSessionUnavailable)
		return nil, false
	}
	return session, true
}

func (h *SessionHandler) decodeInputs(w http.ResponseWriter, r *http.Request) (InputsRequest, bool) {
	var req InputsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return req, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return req, false
	}

	return req, true
}

// respondWithSessionError writes the notice for a failed session action
// along with the state it left behind.
func respondWithSessionError(w http.ResponseWriter, r *http.Request, err error, state coverletter.State) {
	opts := []shared.ResponseOption{shared.WithState(state)}
	if errors.Is(err, coverletter.ErrNoCredits) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
