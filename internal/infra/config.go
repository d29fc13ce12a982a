package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"symbench/internal/domain"
)

// Defaults used when no config file and no CLI argument are given.
const (
	DefaultIterations  = 10_000_000
	DefaultSeed        = 42
	DefaultTarget      = "BTCUSD"
	DefaultFanoutStart = 8
	DefaultFanoutMax   = 1024
)

// Config holds the full benchmark configuration. It is loaded from YAML,
// then overridden by environment variables, then validated.
type Config struct {
	Benchmark struct {
		Iterations  int    `yaml:"iterations"`
		Seed        uint64 `yaml:"seed"`
		Target      string `yaml:"target"`
		FanoutStart int    `yaml:"fanout_start"`
		FanoutMax   int    `yaml:"fanout_max"`
	} `yaml:"benchmark"`

	Storage struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"` // empty: stderr only, no rotation
	} `yaml:"logging"`
}

// DefaultConfig returns the built-in configuration. The harness must work
// standalone, so every field has a usable default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Benchmark.Iterations = DefaultIterations
	cfg.Benchmark.Seed = DefaultSeed
	cfg.Benchmark.Target = DefaultTarget
	cfg.Benchmark.FanoutStart = DefaultFanoutStart
	cfg.Benchmark.FanoutMax = DefaultFanoutMax
	cfg.Storage.Path = "data/symbench.db"
	cfg.Logging.Level = "info"
	return cfg
}

// LoadConfig reads the config file at path, applies environment overrides
// and validates the result. A missing file is not an error: the built-in
// defaults are used so the binary runs without any setup.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if c.Benchmark.Iterations <= 0 {
		return &domain.ConfigError{Field: "benchmark.iterations",
			Err: fmt.Errorf("must be positive, got %d", c.Benchmark.Iterations)}
	}
	if c.Benchmark.Target == "" {
		return &domain.ConfigError{Field: "benchmark.target", Err: domain.ErrEmptySymbol}
	}
	if c.Benchmark.FanoutStart < 1 {
		return &domain.ConfigError{Field: "benchmark.fanout_start",
			Err: fmt.Errorf("must be >= 1, got %d", c.Benchmark.FanoutStart)}
	}
	if c.Benchmark.FanoutMax < c.Benchmark.FanoutStart {
		return &domain.ConfigError{Field: "benchmark.fanout_max",
			Err: fmt.Errorf("must be >= fanout_start, got %d", c.Benchmark.FanoutMax)}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &domain.ConfigError{Field: "logging.level",
			Err: fmt.Errorf("unknown level %q", c.Logging.Level)}
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return &domain.ConfigError{Field: "storage.path",
			Err: errors.New("required when storage is enabled")}
	}
	return nil
}

// overrideWithEnv applies environment variable overrides where present.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("SYMBENCH_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Benchmark.Iterations = n
		}
	}
	if v := os.Getenv("SYMBENCH_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Benchmark.Seed = n
		}
	}
	if v := os.Getenv("SYMBENCH_TARGET"); v != "" {
		cfg.Benchmark.Target = v
	}
	if v := os.Getenv("SYMBENCH_DB"); v != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.Path = v
	}
	if v := os.Getenv("SYMBENCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
