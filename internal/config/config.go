package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultConfigName = "config"

// minUpstreamTimeout rejects unitless durations, which parse as nanoseconds
const minUpstreamTimeout = time.Millisecond

// Storage backends for fixture documents
const (
	StorageTypeFilesystem = "filesystem"
	StorageTypeRedis      = "redis"
	StorageTypeMemory     = "memory"
)

type Config struct {
	Host string
	Port int

	// SteamAPIKey is the upstream credential. Empty means fixture data only.
	SteamAPIKey     string
	SteamAPIBaseURL string
	UpstreamTimeout time.Duration

	AssetsDir    string
	StorageType  string
	RedisURL     string
	SeedFixtures bool
}

// Load reads configuration from the optional config file and the environment
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", "")
	v.SetDefault("port", 5001)
	v.SetDefault("steam_api_key", "")
	v.SetDefault("steam_api_base_url", "https://api.steampowered.com")
	v.SetDefault("upstream_timeout", 10*time.Second)
	v.SetDefault("assets_dir", "attached_assets")
	v.SetDefault("storage_type", StorageTypeFilesystem)
	v.SetDefault("redis_url", "")
	v.SetDefault("seed_fixtures", false)

	// Config file is optional; env-only is fine.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Host:            strings.TrimSpace(v.GetString("host")),
		Port:            v.GetInt("port"),
		SteamAPIKey:     strings.TrimSpace(v.GetString("steam_api_key")),
		SteamAPIBaseURL: strings.TrimSpace(v.GetString("steam_api_base_url")),
		UpstreamTimeout: v.GetDuration("upstream_timeout"),
		AssetsDir:       v.GetString("assets_dir"),
		StorageType:     strings.ToLower(strings.TrimSpace(v.GetString("storage_type"))),
		RedisURL:        strings.TrimSpace(v.GetString("redis_url")),
		SeedFixtures:    v.GetBool("seed_fixtures"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.UpstreamTimeout < minUpstreamTimeout {
		return fmt.Errorf("upstream_timeout must be at least %s (use a unit suffix such as 10s), got %s", minUpstreamTimeout, c.UpstreamTimeout)
	}
	if c.SteamAPIBaseURL == "" {
		return errors.New("steam_api_base_url must not be empty")
	}

	switch c.StorageType {
	case StorageTypeFilesystem, StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url required when storage_type is redis")
		}
	default:
		return fmt.Errorf("invalid storage_type %q: must be filesystem, redis or memory", c.StorageType)
	}

	if c.SeedFixtures && c.StorageType == StorageTypeFilesystem {
		return errors.New("seed_fixtures requires storage_type redis or memory")
	}
	if (c.StorageType == StorageTypeFilesystem || c.SeedFixtures) && strings.TrimSpace(c.AssetsDir) == "" {
		return errors.New("assets_dir must not be empty")
	}
	return nil
}

// HasSteamAPIKey reports whether live upstream calls are enabled
func (c Config) HasSteamAPIKey() bool {
	return c.SteamAPIKey != ""
}
