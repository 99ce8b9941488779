package coverletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/covercraft/internal/generation"
	"github.com/phrazzld/covercraft/internal/redact"
)

// Checkout is the payment collaborator behind the subscription action.
type Checkout interface {
	Subscribe(ctx context.Context) error
}

// Options configures a Session.
type Options struct {
	// Model is the fixed model identifier sent with every request.
	Model string
	// InitialCredits is the credit counter's starting value.
	InitialCredits int
	// RefillCredits is the value the counter is reset to by Subscribe.
	RefillCredits int
	// CopyResetDelay is how long the copied flag stays set.
	CopyResetDelay time.Duration
}

// DefaultOptions returns the product defaults.
func DefaultOptions() Options {
	return Options{
		Model:          "gemini-3-flash-preview",
		InitialCredits: 3,
		RefillCredits:  10,
		CopyResetDelay: 2 * time.Second,
	}
}

func (o Options) validate() error {
	switch {
	case o.Model == "":
		return errors.New("model cannot be empty")
	case o.InitialCredits < 0:
		return errors.New("initial credits cannot be negative")
	case o.RefillCredits <= 0:
		return errors.New("refill credits must be positive")
	case o.CopyResetDelay <= 0:
		return errors.New("copy reset delay must be positive")
	}
	return nil
}

// Dependencies are the collaborators of a Session. Generator and Checkout are
// required; the others default when nil.
type Dependencies struct {
	Generator generation.Generator
	Checkout  Checkout
	Prompt    *PromptBuilder
	Logger    *slog.Logger
}

// State is a point-in-time copy of a Session's fields.
type State struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"job_description"`
	Credits        int    `json:"credits"`
	Letter         string `json:"letter"`
	Generating     bool   `json:"generating"`
	Copied         bool   `json:"copied"`
	PricingOpen    bool   `json:"pricing_open"`
	CanGenerate    bool   `json:"can_generate"`
}

// stopper is satisfied by *time.Timer.
type stopper interface {
	Stop() bool
}

// Session holds the state of one user's cover letter form. All methods are
// safe for concurrent use. The mutex is never held across the outbound
// generation request.
type Session struct {
	generator generation.Generator
	checkout  Checkout
	prompt    *PromptBuilder
	logger    *slog.Logger
	opts      Options
	afterFunc func(time.Duration, func()) stopper
	now       func() time.Time

	mu             sync.Mutex
	resume         string
	jobDescription string
	credits        int
	letter         string
	generating     bool
	copied         bool
	pricingOpen    bool
	copyTimer      stopper
	copySeq        uint64
	lastActive     time.Time
}

// NewSession creates a Session with a full credit counter and an empty letter.
func NewSession(deps Dependencies, opts Options) (*Session, error) {
	if deps.Generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if deps.Checkout == nil {
		return nil, errors.New("checkout cannot be nil")
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid session options: %w", err)
	}

	s := &Session{
		generator: deps.Generator,
		checkout:  deps.Checkout,
		prompt:    deps.Prompt,
		logger:    deps.Logger,
		opts:      opts,
		afterFunc: func(d time.Duration, f func()) stopper { return time.AfterFunc(d, f) },
		now:       time.Now,
		credits:   opts.InitialCredits,
	}
	if s.prompt == nil {
		s.prompt = DefaultPromptBuilder()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.lastActive = s.now()

	return s, nil
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// CanGenerate reports whether the generate trigger is enabled: no request is
// outstanding and both inputs are non-empty.
func (s *Session) CanGenerate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canGenerateLocked()
}

// LastActive returns the time of the most recent user action.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// SetInputs records the current form text.
func (s *Session) SetInputs(resume, jobDescription string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = resume
	s.jobDescription = jobDescription
	s.touchLocked()
	return s.stateLocked()
}

// Generate runs the generation request flow.
//
// Preconditions are checked in order before any network activity: empty
// input returns ErrValidation with no state change; no credits opens the
// pricing modal and returns ErrNoCredits; an outstanding request returns
// ErrGenerationInProgress. Otherwise exactly one request is made. On success
// the letter is replaced and one credit is spent; on failure the letter and
// credits are unchanged and the error wraps ErrGenerationFailed. The
// generating flag is cleared on every path.
func (s *Session) Generate(ctx context.Context, resume, jobDescription string) (State, error) {
	s.mu.Lock()
	if resume == "" || jobDescription == "" {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, ErrValidation
	}
	if s.credits <= 0 {
		s.pricingOpen = true
		s.touchLocked()
		st := s.stateLocked()
		s.mu.Unlock()
		s.logger.InfoContext(ctx, "generation blocked, no credits remaining")
		return st, ErrNoCredits
	}
	if s.generating {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, ErrGenerationInProgress
	}
	s.generating = true
	s.touchLocked()
	s.mu.Unlock()

	// Runs even if the generator panics.
	defer s.finishGenerating()

	text, err := s.requestLetter(ctx, resume, jobDescription)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false

	if err != nil {
		s.logger.ErrorContext(ctx, "cover letter generation failed",
			"error", redact.Error(err),
			"credits_remaining", s.credits)
		return s.stateLocked(), fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	s.letter = text
	s.credits--
	s.logger.InfoContext(ctx, "cover letter generated",
		"letter_length", len(text),
		"credits_remaining", s.credits)

	return s.stateLocked(), nil
}

func (s *Session) requestLetter(ctx context.Context, resume, jobDescription string) (string, error) {
	prompt, err := s.prompt.Build(resume, jobDescription)
	if err != nil {
		return "", err
	}
	return s.generator.GenerateText(ctx, s.opts.Model, prompt)
}

func (s *Session) finishGenerating() {
	s.mu.Lock()
	s.generating = false
	s.mu.Unlock()
}

// Copy writes the current letter to clip and sets the copied flag for the
// configured delay. A later Copy restarts the window.
func (s *Session) Copy(ctx context.Context, clip Clipboard) (State, error) {
	s.mu.Lock()
	text := s.letter
	s.mu.Unlock()

	if text == "" {
		return s.State(), ErrNothingToCopy
	}
	if err := clip.WriteText(ctx, text); err != nil {
		return s.State(), fmt.Errorf("failed to write clipboard: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.copied = true
	s.copySeq++
	seq := s.copySeq
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.copyTimer = s.afterFunc(s.opts.CopyResetDelay, func() { s.resetCopied(seq) })
	s.touchLocked()

	return s.stateLocked(), nil
}

// resetCopied clears the copied flag unless a later Copy superseded seq.
func (s *Session) resetCopied(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.copySeq != seq {
		return
	}
	s.copied = false
	s.copyTimer = nil
}

// OpenPricing shows the pricing modal.
func (s *Session) OpenPricing() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricingOpen = true
	s.touchLocked()
	return s.stateLocked()
}

// ClosePricing dismisses the pricing modal.
func (s *Session) ClosePricing() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricingOpen = false
	s.touchLocked()
	return s.stateLocked()
}

// Subscribe runs the checkout collaborator and, on success, closes the
// pricing modal and resets credits to the refill value. On failure nothing
// changes and the error wraps ErrCheckoutFailed.
func (s *Session) Subscribe(ctx context.Context) (State, error) {
	if err := s.checkout.Subscribe(ctx); err != nil {
		s.logger.WarnContext(ctx, "checkout failed", "error", redact.Error(err))
		return s.State(), fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits = s.opts.RefillCredits
	s.pricingOpen = false
	s.touchLocked()
	s.logger.InfoContext(ctx, "subscription granted credits", "credits", s.credits)

	return s.stateLocked(), nil
}

// Close stops any pending copied-flag reset.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.copyTimer != nil {
		s.copyTimer.Stop()
		s.copyTimer = nil
	}
}

func (s *Session) canGenerateLocked() bool {
	return !s.generating && s.resume != "" && s.jobDescription != ""
}

func (s *Session) touchLocked() {
	s.lastActive = s.now()
}

func (s *Session) stateLocked() State {
	return State{
		Resume:         s.resume,
		JobDescription: s.jobDescription,
		Credits:        s.credits,
		Letter:         s.letter,
		Generating:     s.generating,
		Copied:         s.copied,
		PricingOpen:    s.pricingOpen,
		CanGenerate:    s.canGenerateLocked(),
	}
}
