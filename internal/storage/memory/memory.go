// Package memory provides in-memory stand-ins for the on-disk stores so the
// generation workflow can be exercised without touching real state files.
package memory

import (
	"context"
	"sync"
)

// CounterStore is an in-memory storage.CounterStore.
type CounterStore struct {
	mu sync.Mutex
	n  int

	// ReadErr and WriteErr, when set, are returned by the corresponding
	// call. They script failure paths in tests.
	ReadErr  error
	WriteErr error
}

func NewCounterStore(n int) *CounterStore {
	return &CounterStore{n: n}
}

func (s *CounterStore) Read(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return 0, s.ReadErr
	}
	return s.n, nil
}

func (s *CounterStore) Write(_ context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.n = n
	return nil
}

// Value returns the stored counter without error injection.
func (s *CounterStore) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}
