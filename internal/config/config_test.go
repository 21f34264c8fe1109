package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "both", cfg.Solver.Kind)
	assert.Equal(t, 8, cfg.Solver.Depth)
	assert.Equal(t, 6, cfg.Generator.Count)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
solver:
  kind: heuristic
  depth: 6
  timeout: 2s
generator:
  seed: 42
  large: 1
bench:
  workers: 2
log:
  output: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "heuristic", cfg.Solver.Kind)
	assert.Equal(t, 6, cfg.Solver.Depth)
	assert.Equal(t, 2*time.Second, cfg.Solver.Timeout)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, 1, cfg.Generator.Large)
	assert.Equal(t, 6, cfg.Generator.Count, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.Bench.Workers)
	assert.Equal(t, "json", cfg.Log.Output)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bench": {"puzzles": 5, "metrics_file": "out.prom"}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Bench.Puzzles)
	assert.Equal(t, "out.prom", cfg.Bench.MetricsFile)
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: [unclosed"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "load config file")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  depth: 4\n"), 0o644))

	t.Setenv("COUNTDOWN_DEPTH", "10")
	t.Setenv("COUNTDOWN_SOLVER", "exhaustive")
	t.Setenv("COUNTDOWN_SIBLING_SCAN", "true")
	t.Setenv("COUNTDOWN_SEED", "7")
	t.Setenv("COUNTDOWN_TIMEOUT", "150ms")
	t.Setenv("COUNTDOWN_BENCH_WORKERS", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Solver.Depth)
	assert.Equal(t, "exhaustive", cfg.Solver.Kind)
	assert.True(t, cfg.Solver.SiblingScan)
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, 150*time.Millisecond, cfg.Solver.Timeout)
	assert.Equal(t, 4, cfg.Bench.Workers, "malformed values are ignored")
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"solver kind", func(c *Config) { c.Solver.Kind = "annealing" }},
		{"negative depth", func(c *Config) { c.Solver.Depth = -1 }},
		{"too many large", func(c *Config) { c.Generator.Large = 5 }},
		{"large exceeds count", func(c *Config) { c.Generator.Large, c.Generator.Count = 4, 3 }},
		{"zero workers", func(c *Config) { c.Bench.Workers = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "trace" }},
		{"output", func(c *Config) { c.Log.Output = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("COUNTDOWN_LOG_LEVEL", "loud")
	_, err := Load("")
	assert.ErrorContains(t, err, "invalid config")
}
