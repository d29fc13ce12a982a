package infra

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"symbench/internal/domain"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Benchmark.Iterations != DefaultIterations {
		t.Errorf("Expected default iterations %d, got %d", DefaultIterations, cfg.Benchmark.Iterations)
	}
	if cfg.Benchmark.Target != DefaultTarget {
		t.Errorf("Expected default target %s, got %s", DefaultTarget, cfg.Benchmark.Target)
	}
	if cfg.Benchmark.FanoutStart != 8 || cfg.Benchmark.FanoutMax != 1024 {
		t.Errorf("Expected fanout sweep 8..1024, got %d..%d",
			cfg.Benchmark.FanoutStart, cfg.Benchmark.FanoutMax)
	}
	if cfg.Storage.Enabled {
		t.Error("Storage must be disabled by default")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
benchmark:
  iterations: 5000
  seed: 7
  target: "ETHUSD"
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Benchmark.Iterations != 5000 {
		t.Errorf("Expected 5000 iterations, got %d", cfg.Benchmark.Iterations)
	}
	if cfg.Benchmark.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Benchmark.Seed)
	}
	if cfg.Benchmark.Target != "ETHUSD" {
		t.Errorf("Expected target ETHUSD, got %s", cfg.Benchmark.Target)
	}
	// Unset keys keep their defaults
	if cfg.Benchmark.FanoutMax != 1024 {
		t.Errorf("Expected default fanout_max 1024, got %d", cfg.Benchmark.FanoutMax)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SYMBENCH_ITERATIONS", "123")
	t.Setenv("SYMBENCH_TARGET", "SOLUSD")
	t.Setenv("SYMBENCH_DB", filepath.Join(t.TempDir(), "runs.db"))

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Benchmark.Iterations != 123 {
		t.Errorf("Expected env-driven 123 iterations, got %d", cfg.Benchmark.Iterations)
	}
	if cfg.Benchmark.Target != "SOLUSD" {
		t.Errorf("Expected env-driven target SOLUSD, got %s", cfg.Benchmark.Target)
	}
	if !cfg.Storage.Enabled {
		t.Error("SYMBENCH_DB should enable storage")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Negative Iterations", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Benchmark.Iterations = -1
		assertConfigError(t, cfg.Validate())
	})

	t.Run("Empty Target", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Benchmark.Target = ""
		assertConfigError(t, cfg.Validate())
	})

	t.Run("Inverted Fanout Range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Benchmark.FanoutStart = 64
		cfg.Benchmark.FanoutMax = 8
		assertConfigError(t, cfg.Validate())
	})

	t.Run("Unknown Log Level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "verbose"
		assertConfigError(t, cfg.Validate())
	})

	t.Run("Storage Without Path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage.Enabled = true
		cfg.Storage.Path = ""
		assertConfigError(t, cfg.Validate())
	})
}

func assertConfigError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	var ce *domain.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConfigError, got %T: %v", err, err)
	}
}
