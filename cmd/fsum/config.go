package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig holds defaults loaded from an fsum.toml manifest. Everything in
// it is optional; flags and arguments always override it.
type fileConfig struct {
	Hash hashConfig `toml:"hash"`
}

type hashConfig struct {
	Algorithm string   `toml:"algorithm"`
	BatchSize int      `toml:"batch_size"`
	Patterns  []string `toml:"patterns"`
}

// findFsumToml walks up from startDir looking for an fsum.toml.
func findFsumToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "fsum.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig loads the nearest fsum.toml, if any. Absence is not an error.
func loadConfig(startDir string) (fileConfig, bool, error) {
	path, ok, err := findFsumToml(startDir)
	if err != nil || !ok {
		return fileConfig{}, ok, err
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Hash.BatchSize < 0 {
		return fileConfig{}, true, fmt.Errorf("%s: batch_size must be positive, got %d", path, cfg.Hash.BatchSize)
	}
	return cfg, true, nil
}
