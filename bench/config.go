// Package bench - configuration via koanf (defaults < YAML file < env).
package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrConfigInvalid wraps every config domain violation.
var ErrConfigInvalid = errors.New("bench: invalid configuration")

const envPrefix = "MCES_"

// Config is the experiment description.
type Config struct {
	// NMin and NMax bound the pattern-graph node counts (inclusive).
	NMin int `koanf:"n_min"`
	NMax int `koanf:"n_max"`

	// EdgeMultipliers derive edge budgets as min(round(n*mult), max simple);
	// the spanning-tree minimum n-1 is always included as a budget.
	EdgeMultipliers []float64 `koanf:"edge_multipliers"`

	// TargetExtra is added to n for the target graph size, keeping every
	// generated instance structurally solvable.
	TargetExtra int `koanf:"target_extra"`

	// Repeats is the number of fresh pairs per (n, m) cell.
	Repeats int `koanf:"repeats"`

	// Algorithms lists the stable solver identifiers to run.
	Algorithms []string `koanf:"algorithms"`

	// MaxWorkers bounds concurrent child processes.
	MaxWorkers int `koanf:"max_workers"`

	// Timeout is the wall-clock budget per invocation.
	Timeout time.Duration `koanf:"timeout"`

	// OutDir receives results.csv and results.jsonl.
	OutDir string `koanf:"out_dir"`

	// Seed is the master seed; 0 means derive one from the clock.
	Seed int64 `koanf:"seed"`

	// Bin is the solver binary to re-execute; empty means self.
	Bin string `koanf:"bin"`
}

// defaults mirror the canonical small-scale experiment.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"n_min":            3,
		"n_max":            8,
		"edge_multipliers": []float64{1.0, 1.5, 2.0},
		"target_extra":     2,
		"repeats":          3,
		"algorithms": []string{
			"bruteforce", "bruteforce_arcmatch", "connected",
			"greedy_path", "ilp", "simulated_annealing",
		},
		"max_workers": 4,
		"timeout":     30 * time.Second,
		"out_dir":     "results",
		"seed":        int64(0),
		"bin":         "",
	}
}

// LoadConfig layers defaults, an optional YAML file, and MCES_* environment
// variables, then validates the result.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("bench: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("bench: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// MCES_N_MIN -> n_min; keys are flat, underscores stay.
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("bench: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the experiment domains.
func (c Config) Validate() error {
	switch {
	case c.NMin < 1 || c.NMax < c.NMin:
		return fmt.Errorf("%w: node range [%d,%d]", ErrConfigInvalid, c.NMin, c.NMax)
	case c.TargetExtra < 0:
		return fmt.Errorf("%w: target_extra=%d", ErrConfigInvalid, c.TargetExtra)
	case c.Repeats < 1:
		return fmt.Errorf("%w: repeats=%d", ErrConfigInvalid, c.Repeats)
	case c.MaxWorkers < 1:
		return fmt.Errorf("%w: max_workers=%d", ErrConfigInvalid, c.MaxWorkers)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout=%s", ErrConfigInvalid, c.Timeout)
	case len(c.Algorithms) == 0:
		return fmt.Errorf("%w: no algorithms selected", ErrConfigInvalid)
	case c.OutDir == "":
		return fmt.Errorf("%w: out_dir empty", ErrConfigInvalid)
	}
	for _, mult := range c.EdgeMultipliers {
		if mult < 1.0 {
			return fmt.Errorf("%w: edge multiplier %.2f < 1", ErrConfigInvalid, mult)
		}
	}

	return nil
}
