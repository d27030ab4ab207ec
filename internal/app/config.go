package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig.
const (
	EnvInputDir = "ADVENT_INPUT_DIR"
	EnvNoCache  = "ADVENT_NO_CACHE"
	EnvWorkers  = "ADVENT_WORKERS"
	EnvVerbose  = "ADVENT_VERBOSE"
)

// Config holds run settings. Later sources override earlier ones:
// defaults, .advent/config.yaml, .env, the process environment, CLI flags
// (applied by the caller).
type Config struct {
	// InputDir holds day_NN.txt files. Relative paths are resolved against
	// the project root.
	InputDir string `yaml:"input_dir"`

	// Cache enables the bbolt answer cache.
	Cache bool `yaml:"cache"`

	// Workers bounds parallel obstruction searches; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Verbose turns on debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		InputDir: "input",
		Cache:    true,
	}
}

// LoadConfig layers the config file and environment over the defaults.
// Missing files are not an error.
func LoadConfig(p *Paths) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(p.Config)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p.Config, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", p.Config, err)
	}

	dotenv := map[string]string{}
	if _, err := os.Stat(p.Env); err == nil {
		dotenv, err = godotenv.Read(p.Env)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.Env, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvInputDir); ok && v != "" {
		cfg.InputDir = v
	}
	if v, ok := lookup(EnvNoCache); ok {
		noCache, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvNoCache, v, err)
		}
		cfg.Cache = !noCache
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvWorkers, v, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvVerbose); ok {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvVerbose, v, err)
		}
		cfg.Verbose = verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no run could use.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("config: input_dir is empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	return nil
}
