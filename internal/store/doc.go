// Package store holds the in-memory registry of cover letter sessions.
// Sessions are keyed by the ID carried in the browser's session cookie and
// are discarded after a period of inactivity. Nothing is persisted; a
// restart clears every session.
package store
