package alertlog

import (
	"context"
	"sync"

	"safesignal/internal/domain"
)

// InMemoryStore holds the alert log for the lifetime of the process.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []domain.AlertRecord
}

// NewInMemoryStore constructs an empty in-memory alert log.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, record domain.AlertRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Own the notified snapshot so later caller mutations cannot reach the log.
	record.Notified = append([]string{}, record.Notified...)
	s.records = append(s.records, record)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]domain.AlertRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AlertRecord, len(s.records))
	for i, r := range s.records {
		r.Notified = append([]string{}, r.Notified...)
		out[i] = r
	}
	return out, nil
}
