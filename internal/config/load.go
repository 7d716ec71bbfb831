package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file searched for by Discover.
const FileName = ".readcheck.yml"

// Load reads the config file at path over the built-in defaults. Settings
// missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Discover walks up from startDir looking for a .readcheck.yml file. It
// stops at a directory containing .git or at the filesystem root and
// returns "" when no file was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve builds the effective configuration for a run started in dir.
//
// An explicit path must exist; otherwise the file is discovered from dir.
// Environment overrides, including those from a .env file in dir, are
// applied last. Resolve returns the config file used, or "" for none.
func Resolve(dir, explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		found, err := Discover(dir)
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg := Defaults()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, path, err
		}
		cfg = loaded
	}

	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, path, err
	}
	cfg.ApplyEnv()

	return cfg, path, nil
}
