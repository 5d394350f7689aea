// Package storage provides small typed stores for state that survives across
// runs: values are JSON on disk, loads fail open to the zero value so corrupt
// or missing state never surfaces as an error to callers.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type Store[T any] interface {
	// Load returns the persisted value, or the zero value when nothing is
	// persisted or the persisted bytes do not decode.
	Load() T
	Save(v T) error
	Clear() error
}

// FileStore persists a single value as a JSON file. Writes go through a
// temp file and rename so a crashed write never leaves a torn value behind.
type FileStore[T any] struct {
	path string
	mu   sync.Mutex
}

func NewFileStore[T any](path string) *FileStore[T] {
	return &FileStore[T]{path: path}
}

func (s *FileStore[T]) Load() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v T
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return v
	}
	if err := json.Unmarshal(buf, &v); err != nil {
		var zero T
		return zero
	}
	return v
}

func (s *FileStore[T]) Save(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore keeps the value in memory. Used in tests and for session-scoped
// state that should not outlive the process.
type MemStore[T any] struct {
	mu  sync.Mutex
	v   T
	set bool
}

func NewMemStore[T any]() *MemStore[T] {
	return &MemStore[T]{}
}

func (s *MemStore[T]) Load() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		var zero T
		return zero
	}
	return s.v
}

func (s *MemStore[T]) Save(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v = v
	s.set = true
	return nil
}

func (s *MemStore[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.v = zero
	s.set = false
	return nil
}
