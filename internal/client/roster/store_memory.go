package roster

import (
	"context"
	"sync"
)

// InMemoryKV backs the roster for tests and the demo client.
type InMemoryKV struct {
	mu      sync.Mutex
	payload []byte
	set     bool
}

func NewInMemoryKV() *InMemoryKV {
	return &InMemoryKV{}
}

func (s *InMemoryKV) Load(_ context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false, nil
	}
	return append([]byte{}, s.payload...), true, nil
}

func (s *InMemoryKV) Save(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = append([]byte{}, payload...)
	s.set = true
	return nil
}
