// Package config loads CLI defaults with priority env > file > built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COUNTDOWN_"

var validate = validator.New()

type Config struct {
	Solver    SolverConfig    `json:"solver" yaml:"solver"`
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Bench     BenchConfig     `json:"bench" yaml:"bench"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

type SolverConfig struct {
	// Kind is exhaustive, heuristic or both.
	Kind        string        `json:"kind" yaml:"kind" validate:"oneof=exhaustive heuristic both"`
	Depth       int           `json:"depth" yaml:"depth" validate:"gte=0,lte=16"`
	SiblingScan bool          `json:"sibling_scan" yaml:"sibling_scan"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" validate:"gte=0"`
}

type GeneratorConfig struct {
	// Seed 0 seeds from the clock.
	Seed  int64 `json:"seed" yaml:"seed"`
	Large int   `json:"large" yaml:"large" validate:"gte=0,lte=4"`
	Count int   `json:"count" yaml:"count" validate:"gte=1,lte=10,gtefield=Large"`
}

type BenchConfig struct {
	Puzzles     int    `json:"puzzles" yaml:"puzzles" validate:"gte=1,lte=10000"`
	Workers     int    `json:"workers" yaml:"workers" validate:"gte=1,lte=256"`
	Depth       int    `json:"depth" yaml:"depth" validate:"gte=0,lte=16"`
	MetricsFile string `json:"metrics_file" yaml:"metrics_file"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Output string `json:"output" yaml:"output" validate:"oneof=text json yaml"`
}

func Default() Config {
	return Config{
		Solver: SolverConfig{
			Kind:  "both",
			Depth: 8,
		},
		Generator: GeneratorConfig{
			Large: 2,
			Count: 6,
		},
		Bench: BenchConfig{
			Puzzles: 20,
			Workers: 4,
			Depth:   8,
		},
		Log: LogConfig{
			Level:  "info",
			Output: "text",
		},
	}
}

// Load merges defaults, the optional file at path and COUNTDOWN_* variables,
// then validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error { return validate.Struct(c) }

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	// YAML is a superset of JSON in most files; JSON is the fallback for the rest.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadEnv(cfg *Config) {
	str(&cfg.Solver.Kind, "SOLVER")
	atoi(&cfg.Solver.Depth, "DEPTH")
	boolean(&cfg.Solver.SiblingScan, "SIBLING_SCAN")
	if v := os.Getenv(EnvPrefix + "TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Solver.Timeout = d
		}
	}

	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generator.Seed = i
		}
	}
	atoi(&cfg.Generator.Large, "LARGE")
	atoi(&cfg.Generator.Count, "COUNT")

	atoi(&cfg.Bench.Puzzles, "BENCH_PUZZLES")
	atoi(&cfg.Bench.Workers, "BENCH_WORKERS")
	atoi(&cfg.Bench.Depth, "BENCH_DEPTH")
	str(&cfg.Bench.MetricsFile, "METRICS_FILE")

	str(&cfg.Log.Level, "LOG_LEVEL")
	str(&cfg.Log.Output, "OUTPUT")
}

// Malformed numeric or boolean values are ignored and the previous value kept.

func str(dst *string, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		*dst = v
	}
}

func atoi(dst *int, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

func boolean(dst *bool, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
