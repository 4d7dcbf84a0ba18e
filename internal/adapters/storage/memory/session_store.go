package memory

import (
	"sync"

	"github.com/avelarde/daybook/internal/domain"
)

// SessionStore is the in-memory implementation of domain.SessionRepository.
// It is NOT persistent and is the default for development / local mode.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.DayKey][]domain.ChatMessage
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.DayKey][]domain.ChatMessage),
	}
}

// Messages returns the day's log. A day with no session reads as empty,
// never as an error.
func (s *SessionStore) Messages(day domain.DayKey) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[day]
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// SaveMessages replaces the day's log wholesale.
func (s *SessionStore) SaveMessages(day domain.DayKey, msgs []domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.ChatMessage, len(msgs))
	copy(stored, msgs)
	s.sessions[day] = stored
	return nil
}

// Clear empties the day's session. Idempotent.
func (s *SessionStore) Clear(day domain.DayKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, day)
	return nil
}
