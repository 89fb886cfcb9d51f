package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the file Save writes: the file the config was loaded from,
// or config.yaml in the user's config directory.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Save writes the config back to Path.
func (c *Config) Save() error {
	return c.SaveTo(c.Path())
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
