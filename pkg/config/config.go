// Package config provides settings management for the pr-collector application.
package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirEnvVar relocates the settings directory when set.
	ConfigDirEnvVar = "PR_COLLECTOR_CONFIG_DIR"

	// TokenEnvVar overrides the token stored in the settings file.
	TokenEnvVar = "GITHUB_TOKEN"

	defaultConfigDirName = ".pr-collector"
	configFileName       = "config.yaml"
)

// Config represents the persisted application settings.
type Config struct {
	GitHubToken      string `yaml:"github_token"`
	DefaultOutputDir string `yaml:"default_output_dir"`
}

// DefaultConfigPath returns the settings file location, honoring the
// PR_COLLECTOR_CONFIG_DIR environment variable.
func DefaultConfigPath() string {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return filepath.Join(dir, configFileName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}
	return filepath.Join(homeDir, defaultConfigDirName, configFileName)
}
