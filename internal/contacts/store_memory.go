package contacts

import (
	"context"
	"fmt"
	"sync"

	"safesignal/internal/domain"
	"safesignal/pkg/platform/sentinel"
)

// InMemoryStore keeps contacts in insertion order for tests and single-node
// deployments. The mutex makes id assignment and removal atomic under
// concurrent request handling.
type InMemoryStore struct {
	mu       sync.RWMutex
	contacts []domain.Contact
	nextID   int64
}

// NewInMemoryStore constructs an empty in-memory contact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{nextID: 1}
}

func (s *InMemoryStore) List(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Contact{}, s.contacts...), nil
}

func (s *InMemoryStore) Create(_ context.Context, contact domain.Contact) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contact.ID = s.nextID
	s.nextID++
	s.contacts = append(s.contacts, contact)
	return contact, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("contact %d: %w", id, sentinel.ErrNotFound)
}
