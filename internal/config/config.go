// Package config loads the application configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the file omits a value.
const (
	defaultTurnDuration = 120 // seconds
	defaultMaxActors    = 3
	defaultBackend      = "file"
	defaultRedisAddr    = "localhost:6379"
	defaultAdminPin     = "1234"
)

// Config is the application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Admin   AdminConfig   `yaml:"admin"`
	UI      UIConfig      `yaml:"ui"`
}

// GameConfig tunes the turn engine.
type GameConfig struct {
	TurnDuration int `yaml:"turn_duration"` // countdown length (seconds)
	MaxActors    int `yaml:"max_actors"`    // upper bound on actors per turn
}

// StorageConfig selects and configures the content store backend.
type StorageConfig struct {
	Backend string      `yaml:"backend"` // "file" or "redis"
	File    FileConfig  `yaml:"file"`
	Redis   RedisConfig `yaml:"redis"`
}

// FileConfig configures the YAML file store.
type FileConfig struct {
	Path string `yaml:"path"` // empty means ~/.mimica-master/categories.yaml
}

// RedisConfig configures the Redis store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AdminConfig gates the category administration screen.
type AdminConfig struct {
	Pin string `yaml:"pin"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// TurnDurationDuration returns the countdown length.
func (c *GameConfig) TurnDurationDuration() time.Duration {
	return time.Duration(c.TurnDuration) * time.Second
}

// Load reads and parses the config file, filling in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Non-positive values would leave every turn unwinnable, so they are
	// repaired the same way as missing ones.
	if c.Game.TurnDuration <= 0 {
		c.Game.TurnDuration = defaultTurnDuration
	}
	if c.Game.MaxActors <= 0 {
		c.Game.MaxActors = defaultMaxActors
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = defaultRedisAddr
	}
	if c.Admin.Pin == "" {
		c.Admin.Pin = defaultAdminPin
	}
}
