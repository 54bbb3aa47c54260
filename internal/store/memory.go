package store

import (
	"context"
	"sync"

	"github.com/openwallet/notification-services/internal/domain"
)

// MemoryStore is an in-memory Store implementation used by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot domain.StateSnapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadState(_ context.Context) (domain.StateSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone(), nil
}

func (s *MemoryStore) SaveState(_ context.Context, snapshot domain.StateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot.Clone()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
