package core

import (
	"errors"
	"sync"
	"time"
)

// Session is a conversational container tracking mutable key/value state
// plus an ordered event history. It is safe for concurrent access.
//
// Contract:
//   - State mutations update the Updated timestamp
//   - Events returns a defensive copy to avoid external mutation
//   - Transcript filters events to user/assistant roles
//   - Clone performs deep copies of maps and slices for safe divergence.
type Session struct {
	ID       string            `json:"id"`
	State    map[string]any    `json:"state"`
	History  []TaskEvent       `json:"history"`
	Created  time.Time         `json:"created"`
	Updated  time.Time         `json:"updated"`
	Metadata map[string]string `json:"metadata"`
	mu       sync.RWMutex
}

// NewSession creates a new session with the given ID.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, State: map[string]any{}, History: []TaskEvent{}, Created: now, Updated: now, Metadata: map[string]string{}}
}

// GetState returns the value and existence flag for a state key.
func (s *Session) GetState(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.State[key]
	return v, ok
}

// SetState sets a key/value pair in session state updating the Updated timestamp.
func (s *Session) SetState(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State[key] = value
	s.Updated = time.Now()
}

// ApplyStateDelta merges the provided key/value pairs into State.
func (s *Session) ApplyStateDelta(delta map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range delta {
		s.State[k] = v
	}
	s.Updated = time.Now()
}

// AddEvent appends an event to the history updating the Updated timestamp.
func (s *Session) AddEvent(ev TaskEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History = append(s.History, ev)
	s.Updated = time.Now()
}

// Events returns a defensive copy of the full event slice.
func (s *Session) Events() []TaskEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]TaskEvent, len(s.History))
	copy(events, s.History)
	return events
}

// Transcript returns the events suitable as conversational context for a
// model: user and assistant roles only, in order.
func (s *Session) Transcript() []TaskEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]TaskEvent, 0, len(s.History))
	for _, ev := range s.History {
		if ev.Role != "user" && ev.Role != "assistant" {
			continue
		}
		res = append(res, ev)
	}
	return res
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{ID: s.ID, State: make(map[string]any, len(s.State)), History: make([]TaskEvent, len(s.History)), Created: s.Created, Updated: s.Updated, Metadata: make(map[string]string, len(s.Metadata))}
	for k, v := range s.State {
		clone.State[k] = v
	}
	copy(clone.History, s.History)
	for k, v := range s.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}

// ErrSessionNotFound is returned by stores when the requested session id
// has not been created.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists sessions and their evolving state / event history.
type SessionStore interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	AppendEvent(sessionID string, event TaskEvent) error
	ApplyDelta(sessionID string, delta map[string]any) error
}
