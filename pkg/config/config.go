// Package config holds the run configuration for workflow synchronization.
// Values are layered: an optional YAML file provides defaults, GitHub Actions
// input variables override the file, and command-line flags override both.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the sync run configuration
type Config struct {
	Owner     OwnerConfig  `yaml:"owner"`
	Topic     string       `yaml:"topic"`
	Directory string       `yaml:"directory"`
	Prefix    string       `yaml:"prefix"`
	GitHub    GitHubConfig `yaml:"github"`
}

// OwnerConfig names the user or organization whose repositories are synced.
// Exactly one of the two fields may be set.
type OwnerConfig struct {
	User         string `yaml:"user"`
	Organization string `yaml:"org"`
}

// GitHubConfig represents GitHub-specific configuration
type GitHubConfig struct {
	Token string `yaml:"token"`
}

// LoadConfigFromPath loads configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ApplyEnvironment overlays GitHub Actions input variables onto the
// configuration. Inputs arrive as INPUT_<NAME> environment variables.
func (c *Config) ApplyEnvironment() {
	if value := lookupInput("user"); value != "" {
		c.Owner.User = value
	}
	if value := lookupInput("org"); value != "" {
		c.Owner.Organization = value
	}
	if value := lookupInput("topic"); value != "" {
		c.Topic = value
	}
	if value := lookupInput("directory"); value != "" {
		c.Directory = value
	}
	if value := lookupInput("prefix"); value != "" {
		c.Prefix = value
	}
}

// lookupInput reads one GitHub Actions input variable.
func lookupInput(name string) string {
	return strings.TrimSpace(os.Getenv("INPUT_" + strings.ToUpper(name)))
}

// Validate validates the configuration. Owner exclusivity is enforced
// separately by the github.Owner type before any remote call.
func (c *Config) Validate() error {
	if c.Topic == "" {
		return fmt.Errorf("topic is required")
	}

	if c.Directory == "" {
		return fmt.Errorf("directory is required")
	}

	return nil
}
