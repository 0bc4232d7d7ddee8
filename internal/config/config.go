// Package config holds the benchmark driver settings and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Vector operations measured for the builtin slice and Vector.
var VectorOperations = []string{
	"push_back",
	"operator[]",
	"at",
	"iterate",
	"copy_ctor",
	"move_ctor",
	"front_back",
	"resize",
	"clear",
	"insert_one",
	"erase_one",
	"compare_eq",
	"swap",
	"random_insert",
	"sort",
}

// Array operations measured for a fixed-length slice and Array.
var ArrayOperations = []string{
	"ctor_default",
	"ctor_init_list",
	"operator[]",
	"at",
	"iterate",
	"copy_ctor",
	"move_ctor",
	"swap",
	"compare_eq",
	"compare_three_way",
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config describes one benchmark session.
type Config struct {
	Runs        int      `yaml:"runs"`
	Seed        uint64   `yaml:"seed"`
	VectorSizes []int    `yaml:"vector_sizes"`
	ArraySizes  []int    `yaml:"array_sizes"`
	Output      string   `yaml:"output"`
	Operations  []string `yaml:"operations,omitempty"`
}

// Default returns the stock session: two vector sizes, two array sizes and
// five runs each, written to results.csv.
func Default() Config {
	return Config{
		Runs:        5,
		Seed:        42,
		VectorSizes: []int{10_000, 100_000},
		ArraySizes:  []int{1_000, 5_000},
		Output:      "results.csv",
	}
}

// Load reads the YAML file at path on top of Default. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem that would make a session meaningless.
func (c Config) Validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalid, c.Runs)
	}
	if len(c.VectorSizes) == 0 && len(c.ArraySizes) == 0 {
		return fmt.Errorf("%w: no sizes to run", ErrInvalid)
	}
	for _, n := range c.VectorSizes {
		if n <= 0 {
			return fmt.Errorf("%w: vector size must be positive, got %d", ErrInvalid, n)
		}
	}
	for _, n := range c.ArraySizes {
		if n <= 0 {
			return fmt.Errorf("%w: array size must be positive, got %d", ErrInvalid, n)
		}
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	for _, op := range c.Operations {
		if !slices.Contains(VectorOperations, op) && !slices.Contains(ArrayOperations, op) {
			return fmt.Errorf("%w: unknown operation %q", ErrInvalid, op)
		}
	}
	return nil
}

// Selected reports whether op is part of the session. An empty Operations
// list selects everything.
func (c Config) Selected(op string) bool {
	return len(c.Operations) == 0 || slices.Contains(c.Operations, op)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
