package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPaths returns the search order for config files.
func DefaultConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "dircount", "config.yaml"))
	}
	paths = append(paths, "/etc/dircount/config.yaml")
	return paths
}

// Resolve loads the config from the given explicit path, or from the first
// default location that exists. A config file is optional: when none is
// found an empty Config is returned for flags to fill in.
func Resolve(explicit string) (*Config, error) {
	path, err := findConfig(explicit, DefaultConfigPaths())
	if err != nil {
		return nil, err
	}
	if path == "" {
		return &Config{}, nil
	}
	return Load(path)
}

func findConfig(explicit string, defaults []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range defaults {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}
