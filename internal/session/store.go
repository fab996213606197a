// Package session keeps one academic record per planning session: an
// in-memory store keyed by session ID plus the JWT token service that binds
// a browser to its session. Records are transient; an idle session is swept
// away wholesale.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bracu-tools/gradesheet-analyzer/internal/record"
)

var ErrNotFound = errors.New("session not found")

// Session owns exactly one academic record. The record is replaced, never
// shared, when a new gradesheet is parsed.
type Session struct {
	ID        string
	Record    *record.AcademicRecord
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store is the in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: map[string]*Session{},
		now:      time.Now,
	}
}

// Create opens a session around an empty record and returns it.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Record:    record.New("", ""),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for an ID and refreshes its idle clock.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.LastSeen = s.now()
	return sess, nil
}

// Replace swaps the session's record for a freshly parsed one.
func (s *Store) Replace(id string, rec *record.AcademicRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Record = rec
	sess.LastSeen = s.now()
	return nil
}

// Sweep drops sessions idle for longer than maxIdle and reports how many
// were removed. Run from the janitor job.
func (s *Store) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
