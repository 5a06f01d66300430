package numfmt

import (
	"context"
	"sort"
	"sync"
)

// PreferenceStore is the durable key-value storage behind user preferences.
type PreferenceStore interface {
	// Get returns the stored value and ok=false when the key is absent
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}

// PreferenceStoreFuncs adapts bare functions into a PreferenceStore.
type PreferenceStoreFuncs struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error
}

func (s PreferenceStoreFuncs) Get(ctx context.Context, key string) (string, bool, error) {
	if s.GetFunc == nil {
		return "", false, nil
	}
	return s.GetFunc(ctx, key)
}

func (s PreferenceStoreFuncs) Set(ctx context.Context, key, value string) error {
	if s.SetFunc == nil {
		return nil
	}
	return s.SetFunc(ctx, key, value)
}

// MemoryStore keeps preferences in process memory. Useful for tests and for
// sessions that should not outlive the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ PreferenceStore = &MemoryStore{}

// NewMemoryStore builds a store seeded with a copy of values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	store := &MemoryStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		store.values[k] = v
	}
	return store
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
