package storage

import (
	"context"
	"fmt"
)

// Seed copies every fixture in src into dst and returns how many were copied
func Seed(ctx context.Context, dst, src FixtureStore) (int, error) {
	names, err := src.ListFixtures(ctx)
	if err != nil {
		return 0, fmt.Errorf("list fixtures: %w", err)
	}

	for i, name := range names {
		data, err := src.GetFixture(ctx, name)
		if err != nil {
			return i, fmt.Errorf("read fixture %s: %w", name, err)
		}
		if err := dst.SaveFixture(ctx, name, data); err != nil {
			return i, fmt.Errorf("save fixture %s: %w", name, err)
		}
	}

	return len(names), nil
}
