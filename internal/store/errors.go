package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no session exists for an ID.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidID is returned for an empty session ID.
	ErrInvalidID = errors.New("invalid session id")
)

// StoreError is a store error with the operation and session that failed.
type StoreError struct {
	Operation string
	SessionID string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s session %q failed: %v", e.Operation, e.SessionID, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(operation, sessionID string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		SessionID: sessionID,
		Err:       err,
	}
}
