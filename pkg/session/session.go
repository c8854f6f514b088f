// Package session provides per-user builder sessions for the HTTP shell.
//
// Each session owns one independent molecule builder; the core library never
// shares state between sessions, so any host serving multiple users stores
// one session per user here. Builders are serialized through their canonical
// document so all backends hold plain JSON.
//
// Two backends implement the Store interface:
//   - memory: in-process storage for single-instance deployments and tests
//   - redis: shared storage for multi-instance deployments
//
// # Usage
//
//	store := session.NewMemoryStore()
//
//	sess := session.New(molecule.New(), session.DefaultTTL)
//	if err := store.Set(ctx, sess); err != nil { ... }
//
//	sess, err := store.Get(ctx, id)
//	builder, err := sess.Builder()
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// DefaultTTL is the default session duration.
const DefaultTTL = 24 * time.Hour

// Session stores one user's builder state.
type Session struct {
	ID        string            `json:"id"`
	State     molecule.Document `json:"state"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// New creates a session wrapping b with a fresh random ID.
func New(b *molecule.Builder, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		State:     molecule.Snapshot(b),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Builder reconstructs the session's builder from its stored document.
func (s *Session) Builder() (*molecule.Builder, error) {
	return s.State.Build()
}

// Update re-captures b as the session's stored state.
func (s *Session) Update(b *molecule.Builder) {
	s.State = molecule.Snapshot(b)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session doesn't exist and ErrExpired if it
	// exists but has exceeded its TTL.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, s *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions (may be a no-op for backends with
	// native expiry).
	Cleanup(ctx context.Context) error
}
