package memory

import (
	"sync"

	"github.com/avelarde/daybook/internal/domain"
)

// StatusStore is the in-memory implementation of domain.StatusRepository.
type StatusStore struct {
	mu       sync.RWMutex
	statuses map[domain.DayKey]domain.ContentStatus
}

func NewStatusStore() *StatusStore {
	return &StatusStore{
		statuses: make(map[domain.DayKey]domain.ContentStatus),
	}
}

// Status returns the day's status; absent days read as the zero value.
func (s *StatusStore) Status(day domain.DayKey) (domain.ContentStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.statuses[day], nil
}

func (s *StatusStore) SaveStatus(day domain.DayKey, status domain.ContentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[day] = status
	return nil
}
