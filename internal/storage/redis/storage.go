package redis

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/playerdna/internal/storage"
)

// Storage is a Redis-backed fixture store
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.FixtureStore = (*Storage)(nil)

func (s *Storage) GetFixture(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, fixtureKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrFixtureNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) SaveFixture(ctx context.Context, name string, data []byte) error {
	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, fixtureKey(name), data, s.cfg.FixtureTTL)
	pipe.SAdd(ctx, fixtureIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListFixtures(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, fixtureIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	// Drop index entries whose document has expired
	live := make([]string, 0, len(names))
	for _, name := range names {
		n, err := s.client.Exists(ctx, fixtureKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			live = append(live, name)
		}
	}
	sort.Strings(live)
	return live, nil
}
