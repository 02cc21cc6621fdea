package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.BlobStorage = (*MemoryStorage)(nil)

// A MemoryStorage keeps blobs in a process-local map. It backs tests
// and the "memory" driver, where the cart deliberately does not
// survive a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "MemoryStorage.Get"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, key, ErrNotFound)
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "MemoryStorage.Set"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.blobs[key] = cp
	return nil
}
