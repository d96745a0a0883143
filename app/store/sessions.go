package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/umputun/delta/app/theme"
)

// Sessions owns one theme controller per visitor session.
// Controllers are created on first access and dropped on Delete, TTL expiration or eviction of the
// least recently used session once maxKeys is reached; a dropped session starts from a fresh
// controller next time.
type Sessions struct {
	mu     sync.Mutex // serializes lookup-or-create, one controller per id
	lru    *expirable.LRU[string, *theme.Controller]
	ttl    time.Duration
	hits   int64
	misses int64
}

// Stats holds session registry counters.
type Stats struct {
	Hits   int64 // lookups of live sessions
	Misses int64 // sessions created
	Keys   int   // live sessions
}

// NewSessions creates a session registry keeping up to maxKeys sessions, each living for ttl.
func NewSessions(maxKeys int, ttl time.Duration) (*Sessions, error) {
	if maxKeys <= 0 {
		return nil, fmt.Errorf("max sessions must be positive, got %d", maxKeys)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %v", ttl)
	}
	return &Sessions{lru: expirable.NewLRU[string, *theme.Controller](maxKeys, nil, ttl), ttl: ttl}, nil
}

// NewSessionID returns a new random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// Controller returns the controller of the session, creating a fresh one if the session is unknown.
func (s *Sessions) Controller(id string) (*theme.Controller, error) {
	if id == "" {
		return nil, errors.New("empty session id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.lru.Get(id); ok {
		s.hits++
		return c, nil
	}
	c := theme.NewController()
	s.lru.Add(id, c)
	s.misses++
	return c, nil
}

// Peek returns the controller of an existing session without creating one.
func (s *Sessions) Peek(id string) (*theme.Controller, error) {
	c, ok := s.lru.Peek(id)
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Delete tears the session down.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Remove(id)
}

// Len returns number of live sessions.
func (s *Sessions) Len() int {
	return s.lru.Len()
}

// TTL returns session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Stats returns registry counters.
func (s *Sessions) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Hits: s.hits, Misses: s.misses, Keys: s.lru.Len()}
}

// Close drops all sessions.
func (s *Sessions) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Purge()
	return nil
}
