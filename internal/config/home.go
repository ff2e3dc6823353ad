package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the per-project configuration directory.
	ConfigDirName = ".folder2json"
	// ConfigFileName is the configuration file inside ConfigDirName.
	ConfigFileName = "config.yaml"
)

// FindConfigFile looks for .folder2json/config.yaml in startDir and each of
// its parents. It returns "" when no file is found before the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(current, ConfigDirName, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", nil
		}
		current = parent
	}
}

// Load resolves the configuration for a run. An explicit path must exist;
// otherwise the nearest .folder2json/config.yaml above the working directory
// is used, falling back to defaults.
func Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		return LoadConfig(explicitPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	found, err := FindConfigFile(cwd)
	if err != nil {
		return nil, err
	}
	if found == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(found)
}
