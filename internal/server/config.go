package server

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds the HTTP shell configuration.
// Values come from an optional TOML file with flag overrides on top;
// the zero config (memory sessions on :8080) works out of the box.
type Config struct {
	Addr    string        `toml:"addr"`
	Session SessionConfig `toml:"session"`
	Redis   RedisConfig   `toml:"redis"`
}

// SessionConfig controls session storage.
type SessionConfig struct {
	Backend string   `toml:"backend"` // "memory" or "redis"
	TTL     Duration `toml:"ttl"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Duration is a time.Duration that decodes from TOML strings like "24h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
		Session: SessionConfig{
			Backend: BackendMemory,
			TTL:     Duration(24 * time.Hour),
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// LoadConfig reads a TOML config file over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("invalid session backend %q (valid: %s, %s)",
			c.Session.Backend, BackendMemory, BackendRedis)
	}
	if time.Duration(c.Session.TTL) <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	return nil
}
