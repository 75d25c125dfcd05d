package storage

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]map[string]string)}
}

func (s *MemoryStore) GetItem(_ context.Context, scope, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[scope][key]
	return v, ok, nil
}

func (s *MemoryStore) SetItem(_ context.Context, scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.items[scope]
	if !ok {
		bucket = make(map[string]string)
		s.items[scope] = bucket
	}
	bucket[key] = value
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
