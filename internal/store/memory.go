package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"trivia-hub/internal/domain"
)

// MemoryStore is a map-backed Storage used for tests and ephemeral
// runs. Values are round-tripped through JSON so it behaves like the
// persistent backends.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

var _ domain.Storage = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode stored value for %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = raw
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

// SetRaw stores a raw value without JSON validation. Tests use it to
// simulate a corrupted document.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = json.RawMessage(raw)
}
