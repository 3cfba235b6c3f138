package storage

import (
	"context"
	"errors"
)

var (
	// ErrFixtureNotFound is returned when no fixture exists under the requested name
	ErrFixtureNotFound = errors.New("fixture not found")
	// ErrReadOnly is returned by stores that cannot be written to
	ErrReadOnly = errors.New("fixture store is read-only")
)

// FixtureStore holds the pre-recorded JSON documents served when live data
// is unavailable. Documents are returned as raw bytes; callers validate them.
type FixtureStore interface {
	GetFixture(ctx context.Context, name string) ([]byte, error)
	SaveFixture(ctx context.Context, name string, data []byte) error
	ListFixtures(ctx context.Context) ([]string, error)
}
