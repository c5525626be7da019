package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds process settings shared by the terminal app and the web host
type Config struct {
	Port          string
	StaticDir     string
	TopicsFile    string // Optional TOML topic table, empty selects the built-in one
	CommandsFile  string // Optional TOML shell command table, empty selects the built-in one
	ParticleCount int
	ParticleIndex string // auto, brute or grid
	FrameRate     int
	Sound         bool
	Debug         bool
	GinMode       string
}

// Default returns the settings used when no environment is set
func Default() *Config {
	return &Config{
		Port:          "8080",
		StaticDir:     "./static",
		ParticleCount: 50,
		ParticleIndex: "auto",
		FrameRate:     60,
		Sound:         true,
		GinMode:       "release",
	}
}

// Load reads envFile into the process environment if present, then builds a Config from it
// Variables already set in the environment take precedence over the file
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over Default
// Malformed numbers and booleans are errors, ranges are left to Validate
func FromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("TOPICS_FILE"); v != "" {
		cfg.TopicsFile = v
	}
	if v := os.Getenv("COMMANDS_FILE"); v != "" {
		cfg.CommandsFile = v
	}
	if v := os.Getenv("PARTICLE_INDEX"); v != "" {
		cfg.ParticleIndex = strings.ToLower(v)
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}

	var err error
	if cfg.ParticleCount, err = envInt("PARTICLE_COUNT", cfg.ParticleCount); err != nil {
		return nil, err
	}
	if cfg.FrameRate, err = envInt("FRAME_RATE", cfg.FrameRate); err != nil {
		return nil, err
	}
	if cfg.Sound, err = envBool("SOUND", cfg.Sound); err != nil {
		return nil, err
	}
	if cfg.Debug, err = envBool("DEBUG", cfg.Debug); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges, callers run it once every override is applied
func (c *Config) Validate() error {
	if c.ParticleCount <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", c.ParticleCount)
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("frame rate must be in 1-240, got %d", c.FrameRate)
	}
	switch c.ParticleIndex {
	case "auto", "brute", "grid":
	default:
		return fmt.Errorf("unknown particle index %q", c.ParticleIndex)
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

// Addr returns the listen address for the web host
func (c *Config) Addr() string {
	return ":" + c.Port
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
