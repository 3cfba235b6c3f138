package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcoot/playerdna/internal/storage"
)

// fixtureExt is the extension of files considered fixture documents
const fixtureExt = ".json"

// Storage serves fixture documents straight from a directory on disk.
// Files are read on every call; nothing is cached.
type Storage struct {
	dir string
}

// New creates a filesystem store rooted at dir
func New(dir string) *Storage {
	return &Storage{dir: dir}
}

// Ensure Storage implements the interface
var _ storage.FixtureStore = (*Storage)(nil)

// Dir returns the directory fixtures are read from
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) GetFixture(ctx context.Context, name string) ([]byte, error) {
	if !validName(name) {
		return nil, storage.ErrFixtureNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrFixtureNotFound
		}
		return nil, err
	}
	return data, nil
}

// SaveFixture always fails; the assets directory is never written by the service
func (s *Storage) SaveFixture(ctx context.Context, name string, data []byte) error {
	return storage.ErrReadOnly
}

func (s *Storage) ListFixtures(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fixtureExt) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// validName rejects anything that could escape the fixture directory
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}
