package kv

import (
	"context"
	"sync"
)

// MemStore is a mutex-guarded in-memory Store. It backs tests and
// throwaway sessions; nothing survives the process.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemStore) List(ctx context.Context) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		out := make([]byte, len(v))
		copy(out, v)
		result[k] = out
	}
	return result, nil
}

func (s *MemStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string][]byte)
	return nil
}

// Update applies fn to a scratch copy of the map and swaps it in only when
// fn succeeds, so a failed batch leaves the store untouched.
func (s *MemStore) Update(ctx context.Context, fn func(ctx context.Context, st Store) error) error {
	s.mu.Lock()
	scratch := &MemStore{data: make(map[string][]byte, len(s.data))}
	for k, v := range s.data {
		out := make([]byte, len(v))
		copy(out, v)
		scratch.data[k] = out
	}
	s.mu.Unlock()

	if err := fn(ctx, scratch); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = scratch.data
	s.mu.Unlock()
	return nil
}
