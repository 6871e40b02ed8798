package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dtroode/marketmanager-server/internal/model"
)

var _ model.Storage = (*Storage)(nil)

// Storage keeps objects in memory.
type Storage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func New() *Storage {
	return &Storage{objects: make(map[string][]byte)}
}

func (s *Storage) Upload(_ context.Context, key string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return nil
}

func (s *Storage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	data, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()

	return nil
}

func (s *Storage) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()

	return ok, nil
}

// Raw returns a copy of the stored bytes.
func (s *Storage) Raw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(data), true
}

// Put stores data directly.
func (s *Storage) Put(key string, data []byte) {
	s.mu.Lock()
	s.objects[key] = bytes.Clone(data)
	s.mu.Unlock()
}
