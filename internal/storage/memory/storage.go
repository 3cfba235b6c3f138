package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/playerdna/internal/storage"
)

// Storage is an in-memory implementation of the fixture store
type Storage struct {
	mu       sync.RWMutex
	fixtures map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		fixtures: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.FixtureStore = (*Storage)(nil)

func (s *Storage) GetFixture(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.fixtures[name]
	if !ok {
		return nil, storage.ErrFixtureNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *Storage) SaveFixture(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.fixtures[name] = stored
	return nil
}

func (s *Storage) ListFixtures(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.fixtures))
	for name := range s.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteFixture removes a fixture (useful for testing fallback paths)
func (s *Storage) DeleteFixture(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fixtures, name)
}
