package memory

import (
	"context"
	"sync"

	"petty-marketplace/internal/ports/statestore"
)

// Store guarda el blob en memoria. Sirve para tests y modo dev sin storage.
type Store struct {
	mu   sync.RWMutex
	blob []byte
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.blob == nil {
		return nil, statestore.ErrNotFound
	}

	out := make([]byte, len(s.blob))
	copy(out, s.blob)
	return out, nil
}

func (s *Store) Save(ctx context.Context, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blob = cp
	return nil
}
