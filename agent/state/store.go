package state

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

var (
	ErrStateNotFound  = errors.New("session state not found")
	ErrNilSession     = errors.New("session is nil")
	ErrInvalidSession = errors.New("session id is empty")
)

// Store is the session persistence contract used by the dialogue engine.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps sessions in a process-wide concurrent map. Sessions are
// stored and returned by value, so callers never share a mutable record.
// There is no TTL: an abandoned mid-flow session stays until Reap is called.
type MemoryStore struct {
	sessions *xsync.MapOf[string, Session]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: xsync.NewMapOf[string, Session](),
	}
}

func (m *MemoryStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	key := strings.TrimSpace(sessionID)
	if key == "" {
		return nil, ErrInvalidSession
	}
	s, ok := m.sessions.Load(key)
	if !ok {
		return nil, ErrStateNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrNilSession
	}
	key := strings.TrimSpace(s.SessionID)
	if key == "" {
		return ErrInvalidSession
	}
	if err := s.Validate(); err != nil {
		return err
	}
	m.sessions.Store(key, *s)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	key := strings.TrimSpace(sessionID)
	if key == "" {
		return ErrInvalidSession
	}
	m.sessions.Delete(key)
	return nil
}

func (m *MemoryStore) Len() int {
	return m.sessions.Size()
}

// Reap is the explicit expiry hook: it evicts every session untouched for
// longer than olderThan and returns how many were removed. olderThan <= 0
// disables eviction, making the call a no-op.
func (m *MemoryStore) Reap(olderThan time.Duration, now time.Time) int {
	if olderThan <= 0 {
		return 0
	}
	cutoff := now.UTC().Add(-olderThan)
	removed := 0
	m.sessions.Range(func(key string, s Session) bool {
		if s.UpdatedAt.Before(cutoff) {
			m.sessions.Delete(key)
			removed++
		}
		return true
	})
	return removed
}
