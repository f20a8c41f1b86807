package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"trivia-hub/internal/domain"
)

// FileStore keeps every document in a single JSON file mapping keys to
// raw JSON values. It is the default backend: a local, zero-dependency
// stand-in for browser local storage. Access is serialized by a mutex;
// concurrent processes sharing the file are last-writer-wins.
type FileStore struct {
	path string

	mu   sync.Mutex
	docs map[string]json.RawMessage
}

// NewFileStore loads the store file at path. A missing or unparsable
// file is treated as an empty namespace, never as an error.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path: path,
		docs: make(map[string]json.RawMessage),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var docs map[string]json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil || docs == nil {
		return s
	}
	s.docs = docs
	return s
}

var _ domain.Storage = (*FileStore)(nil)

func (s *FileStore) Get(_ context.Context, key string, dest any) (bool, error) {
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

func (s *FileStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = raw
	return s.flush()
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[key]; !ok {
		return nil
	}
	delete(s.docs, key)
	return s.flush()
}

// flush rewrites the whole file. Callers must hold the mutex.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
