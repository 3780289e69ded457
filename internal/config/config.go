// Package config loads CLI settings from the environment.
//
// A .env file in the working directory or one of its parents is loaded first;
// variables already set in the environment take precedence over it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvEpochs    = "SCALARGRAD_EPOCHS"
	EnvLR        = "SCALARGRAD_LR"
	EnvSeed      = "SCALARGRAD_SEED"
	EnvOptimizer = "SCALARGRAD_OPTIMIZER"
	EnvMomentum  = "SCALARGRAD_MOMENTUM"
	EnvHidden    = "SCALARGRAD_HIDDEN"
)

// maxEnvDepth is how many directories are searched for a .env file.
const maxEnvDepth = 5

// TrainConfig holds the settings of the train command.
type TrainConfig struct {
	Epochs    int
	LR        float64
	Seed      int64
	Optimizer string // "sgd" or "adam"
	Momentum  float64
	Hidden    []int // Hidden layer widths
}

// Default returns the settings used when nothing is configured.
func Default() TrainConfig {
	return TrainConfig{
		Epochs:    100,
		LR:        0.05,
		Seed:      42,
		Optimizer: "sgd",
		Hidden:    []int{4, 4},
	}
}

// Load reads the train settings from .env and the environment.
func Load() (TrainConfig, error) {
	if err := loadEnvFile(); err != nil {
		return TrainConfig{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the settings from a lookup function such as os.LookupEnv.
// Unset variables keep their default.
func FromLookup(lookup func(string) (string, bool)) (TrainConfig, error) {
	cfg := Default()

	if v, ok := lookup(EnvEpochs); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return TrainConfig{}, fmt.Errorf("%s: %w", EnvEpochs, err)
		}
		if n < 0 {
			return TrainConfig{}, fmt.Errorf("%s: must not be negative, got %d", EnvEpochs, n)
		}
		cfg.Epochs = n
	}

	if v, ok := lookup(EnvLR); ok {
		lr, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return TrainConfig{}, fmt.Errorf("%s: %w", EnvLR, err)
		}
		cfg.LR = lr
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return TrainConfig{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvOptimizer); ok {
		name := strings.ToLower(strings.TrimSpace(v))
		if name != "sgd" && name != "adam" {
			return TrainConfig{}, fmt.Errorf("%s: unknown optimizer %q", EnvOptimizer, v)
		}
		cfg.Optimizer = name
	}

	if v, ok := lookup(EnvMomentum); ok {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return TrainConfig{}, fmt.Errorf("%s: %w", EnvMomentum, err)
		}
		cfg.Momentum = m
	}

	if v, ok := lookup(EnvHidden); ok {
		hidden, err := parseSizes(v)
		if err != nil {
			return TrainConfig{}, fmt.Errorf("%s: %w", EnvHidden, err)
		}
		cfg.Hidden = hidden
	}

	return cfg, nil
}

// parseSizes parses a comma-separated list of positive integers.
// An empty string yields no hidden layers.
func parseSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// loadEnvFile looks for a .env file in the working directory and its parents.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < maxEnvDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
