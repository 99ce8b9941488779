package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/covercraft/internal/coverletter"
)

// SessionFactory builds a fresh session for a new visitor.
type SessionFactory func() (*coverletter.Session, error)

// SessionStore is an in-memory, concurrency-safe map of session ID to
// session.
type SessionStore struct {
	factory SessionFactory
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*coverletter.Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore(factory SessionFactory, logger *slog.Logger) (*SessionStore, error) {
	if factory == nil {
		return nil, errors.New("session factory cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		factory:  factory,
		logger:   logger.With("component", "session_store"),
		now:      time.Now,
		sessions: make(map[string]*coverletter.Session),
	}, nil
}

// NewID returns a fresh random session ID.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape of an ID returned by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// get returns the session for id, or ErrNotFound.
func (s *SessionStore) get(id string) (*coverletter.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, NewStoreError("get", id, ErrNotFound)
	}
	return sess, nil
}

// GetOrCreate returns the session for id, creating it with the factory
// when none exists. created reports whether a new session was made.
func (s *SessionStore) GetOrCreate(id string) (sess *coverletter.Session, created bool, err error) {
	if id == "" {
		return nil, false, NewStoreError("create", id, ErrInvalidID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess, false, nil
	}

	sess, err = s.factory()
	if err != nil {
		return nil, false, NewStoreError("create", id, err)
	}
	s.sessions[id] = sess
	s.logger.Debug("session created", "session_id", id, "active_sessions", len(s.sessions))

	return sess, true, nil
}

// remove deletes and closes the session for id. Removing an unknown ID is
// a no-op.
func (s *SessionStore) remove(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.Close()
	}
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle removes sessions whose last activity is older than ttl.
// Sessions with a generation outstanding are kept. It returns the number
// of sessions removed.
func (s *SessionStore) EvictIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	var evicted []*coverletter.Session
	for id, sess := range s.sessions {
		if sess.LastActive().After(cutoff) || sess.State().Generating {
			continue
		}
		delete(s.sessions, id)
		evicted = append(evicted, sess)
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range evicted {
		sess.Close()
	}
	if len(evicted) > 0 {
		s.logger.Info("evicted idle sessions",
			"count", len(evicted),
			"active_sessions", remaining)
	}

	return len(evicted)
}

// Close removes and closes every session.
func (s *SessionStore) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*coverletter.Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}
