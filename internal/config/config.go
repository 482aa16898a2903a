// Package config loads the optional TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/necklace/config.toml (falling back to
// ~/.config/necklace/config.toml). A missing file is not an error: every
// field has a default.
//
//	[cache]
//	backend = "file"   # file | redis | none
//	dir = ""           # default: $XDG_CACHE_HOME/necklace
//	ttl = "720h"
//	namespace = ""     # prefix for every key
//
//	[redis]
//	addr = "localhost:6379"
//	password = ""
//	db = 0
//
//	[limits]
//	max_configs = 2000000
//
//	[server]
//	addr = ":8080"
//
//	[output]
//	letters = true
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/necklace/pkg/errors"
)

// Default values for the configuration.
const (
	AppName = "necklace"

	DefaultCacheBackend = BackendFile
	DefaultCacheTTL     = 30 * 24 * time.Hour
	DefaultRedisAddr    = "localhost:6379"
	DefaultMaxConfigs   = 2_000_000
	DefaultServerAddr   = ":8080"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the parsed configuration file.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Redis  RedisConfig  `toml:"redis"`
	Limits LimitsConfig `toml:"limits"`
	Server ServerConfig `toml:"server"`
	Output OutputConfig `toml:"output"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	// Backend is one of: file | redis | none.
	Backend string `toml:"backend"`

	// Dir is the file cache directory. Empty uses the XDG cache directory.
	Dir string `toml:"dir"`

	// TTL is the lifetime of cached results.
	TTL time.Duration `toml:"ttl"`

	// Namespace is prepended to every cache key. Bump it to invalidate all
	// entries without clearing the backend.
	Namespace string `toml:"namespace"`
}

// RedisConfig holds the Redis connection used by the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`

	// Prefix namespaces keys when several deployments share one server.
	Prefix string `toml:"prefix"`
}

// LimitsConfig bounds the work a single computation may do.
type LimitsConfig struct {
	// MaxConfigs caps the configuration set size. Negative disables the cap.
	MaxConfigs int64 `toml:"max_configs"`
}

// ServerConfig configures "necklace serve".
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// OutputConfig controls how arrangements are printed.
type OutputConfig struct {
	// Letters prints arrangements as words (aabbbc) instead of index lists.
	Letters bool `toml:"letters"`
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend: DefaultCacheBackend,
			TTL:     DefaultCacheTTL,
		},
		Redis: RedisConfig{
			Addr: DefaultRedisAddr,
		},
		Limits: LimitsConfig{
			MaxConfigs: DefaultMaxConfigs,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
		Output: OutputConfig{
			Letters: true,
		},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path uses Path;
// a missing file at the default path yields the defaults. Unknown keys are
// rejected so that typos do not pass silently.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		var pe toml.ParseError
		if stderrors.As(err, &pe) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "parse %s: %s", path, pe.Message)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural constraints on the configuration.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache.backend %q unknown: want file|redis|none", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Cache.Backend == BackendRedis && c.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis.addr is required for the redis backend")
	}
	if c.Redis.DB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "redis.db %d must not be negative", c.Redis.DB)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}
