package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and as a throwaway driver.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	// FailWrites makes Put and Delete fail with ErrStoreFull, simulating an
	// exhausted store.
	FailWrites bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrKeyNotFound
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Put stores value under key
func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return ErrStoreFull
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

// Delete removes the value under key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return ErrStoreFull
	}
	delete(s.data, key)
	return nil
}

// Close implements Store
func (s *MemoryStore) Close() error {
	return nil
}
