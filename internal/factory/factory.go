package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/playerdna/internal/config"
	"github.com/mcoot/playerdna/internal/services/fixture"
	"github.com/mcoot/playerdna/internal/services/player"
	"github.com/mcoot/playerdna/internal/services/steam"
	"github.com/mcoot/playerdna/internal/storage"
	"github.com/mcoot/playerdna/internal/storage/filesystem"
	"github.com/mcoot/playerdna/internal/storage/memory"
	redisstorage "github.com/mcoot/playerdna/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.FixtureStore

	// External dependencies
	Upstream player.Upstream

	// Services
	FixtureService *fixture.Service
	PlayerService  *player.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// App is the loaded runtime configuration
	App config.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// RedisConfig overrides the Redis settings derived from App (optional)
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, closers, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.App.SeedFixtures {
		n, err := storage.Seed(ctx, store, filesystem.New(cfg.App.AssetsDir))
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("seed fixtures: %w", err)
		}
		logger.Info("seeded fixtures",
			slog.Int("count", n),
			slog.String("from", cfg.App.AssetsDir),
			slog.String("storage", cfg.App.StorageType),
		)
	}

	steamCfg := steam.DefaultConfig()
	steamCfg.APIKey = cfg.App.SteamAPIKey
	if cfg.App.SteamAPIBaseURL != "" {
		steamCfg.BaseURL = cfg.App.SteamAPIBaseURL
	}
	if cfg.App.UpstreamTimeout > 0 {
		steamCfg.Timeout = cfg.App.UpstreamTimeout
	}
	upstream := steam.NewClient(steamCfg)
	if !upstream.HasAPIKey() {
		logger.Info("STEAM_API_KEY not set, serving fixture data only")
	}

	app := newWithDependencies(store, upstream, logger)
	app.closers = closers
	return app, nil
}

// Close releases storage connections
func (a *App) Close() error {
	return closeAll(a.closers)
}

func newStorage(cfg Config) (storage.FixtureStore, []io.Closer, error) {
	storageType := cfg.App.StorageType
	if storageType == "" {
		storageType = config.StorageTypeFilesystem
	}

	switch storageType {
	case config.StorageTypeFilesystem:
		return filesystem.New(cfg.App.AssetsDir), nil, nil
	case config.StorageTypeMemory:
		return memory.New(), nil, nil
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisConfig != nil {
			redisCfg = *cfg.RedisConfig
		} else {
			redisCfg.URL = cfg.App.RedisURL
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return redisStore, []io.Closer{redisStore}, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be filesystem, redis or memory", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.FixtureStore, upstream player.Upstream, logger *slog.Logger) *App {
	fixtureService := fixture.New(store, logger)
	playerService := player.New(upstream, fixtureService, logger)

	return &App{
		Storage:        store,
		Upstream:       upstream,
		FixtureService: fixtureService,
		PlayerService:  playerService,
	}
}

func closeAll(closers []io.Closer) error {
	var firstErr error
	for _, c := range closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
