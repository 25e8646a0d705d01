package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the persisted per-user configuration.
type Settings struct {
	// GlobalFile is the default target markdown file for new tasks.
	GlobalFile string `yaml:"global_file,omitempty"`

	// Model overrides the default completion model.
	Model string `yaml:"model,omitempty"`

	// BaseURL overrides the default completions endpoint.
	BaseURL string `yaml:"base_url,omitempty"`
}

// LoadSettings reads the settings file from the config directory.
// A missing file yields zero settings and a nil error. An unreadable
// or unparsable file yields zero settings and a non-nil error; callers
// treat that as a warning, not a fatal condition.
func (c *Config) LoadSettings() (Settings, error) {
	data, err := os.ReadFile(c.SettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	return s, nil
}

// SaveSettings writes the settings file, creating the config directory
// if needed. The file is written with mode 0600.
func (c *Config) SaveSettings(s Settings) error {
	if err := c.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(c.SettingsPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", SettingsFile, err)
	}
	return nil
}
