package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPinCount   = 10
	DefaultNumFrames  = 10
	DefaultNumPlayers = 2
	DefaultLogLevel   = "info"
)

// Environment variables that override the config file
const (
	EnvPinCount   = "TENPIN_PINS"
	EnvNumFrames  = "TENPIN_FRAMES"
	EnvNumPlayers = "TENPIN_PLAYERS"
	EnvLogLevel   = "TENPIN_LOG_LEVEL"
)

// Config holds the settings for a bowling session
type Config struct {
	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig sets the shape of each game
type GameConfig struct {
	// Pins standing at the start of each frame
	PinCount int `yaml:"pinCount"`

	// Frames per game, not counting fill balls
	NumFrames int `yaml:"numFrames"`

	// Players sharing the lane
	NumPlayers int `yaml:"numPlayers"`
}

// LogConfig controls logging output
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config for standard ten-pin with two players
func Default() *Config {
	return &Config{
		Game: GameConfig{
			PinCount:   DefaultPinCount,
			NumFrames:  DefaultNumFrames,
			NumPlayers: DefaultNumPlayers,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads variables from a .env file into the environment.
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from TENPIN_* environment variables
func (c *Config) ApplyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvPinCount, &c.Game.PinCount},
		{EnvNumFrames, &c.Game.NumFrames},
		{EnvNumPlayers, &c.Game.NumPlayers},
	}

	for _, env := range ints {
		raw := getEnv(env.key, "")
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", env.key, raw, err)
		}
		*env.dst = v
	}

	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)

	return c.Validate()
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Game.PinCount < 1 {
		return fmt.Errorf("pin count must be at least 1, got %d", c.Game.PinCount)
	}
	if c.Game.NumFrames < 1 {
		return fmt.Errorf("frame count must be at least 1, got %d", c.Game.NumFrames)
	}
	if c.Game.NumPlayers < 1 {
		return fmt.Errorf("player count must be at least 1, got %d", c.Game.NumPlayers)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Game.PinCount == 0 {
		c.Game.PinCount = DefaultPinCount
	}
	if c.Game.NumFrames == 0 {
		c.Game.NumFrames = DefaultNumFrames
	}
	if c.Game.NumPlayers == 0 {
		c.Game.NumPlayers = DefaultNumPlayers
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
