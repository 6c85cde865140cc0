// Package store keeps each visitor's referral draft between requests.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"ReferEarn/internal/referral"
)

var ErrNotFound = errors.New("session not found")

// Session is what survives between two requests of the same visitor.
type Session struct {
	Form   referral.Form          `json:"form"`
	Errors referral.Errors        `json:"errors"`
	Flash  *referral.Notification `json:"flash,omitempty"`
}

// NewSession returns an empty session with a fresh form.
func NewSession() Session {
	return Session{Form: referral.NewForm()}
}

// UpdateFunc changes a session in place. It may run more than once for one Update.
type UpdateFunc func(s *Session)

type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	// Update reads the session (a new one when missing), applies fn and writes it
	// back as one step, so concurrent requests of the same visitor do not
	// overwrite each other's changes.
	Update(ctx context.Context, id string, fn UpdateFunc) (Session, error)
}

// Memory keeps sessions in process. Entries expire after ttl of inactivity.
type Memory struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		cache: cache.New(ttl, ttl/2+time.Minute),
		ttl:   ttl,
	}
}

func (m *Memory) Get(_ context.Context, id string) (Session, error) {
	v, ok := m.cache.Get(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	return v.(Session), nil
}

func (m *Memory) Update(_ context.Context, id string, fn UpdateFunc) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := NewSession()
	if v, ok := m.cache.Get(id); ok {
		s = v.(Session)
	}
	fn(&s)
	m.cache.Set(id, s, m.ttl)
	return s, nil
}
