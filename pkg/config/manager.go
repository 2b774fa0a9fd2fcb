package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides settings management with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() Config
	SaveConfig(config Config) error
	SetGitHubToken(token string) error
	SetDefaultOutputDir(dir string) error
	EnsureConfigFile() (bool, error)
	GetConfigPath() string
	DefaultConfig() Config
	ResolveToken(flagToken string) string
}

// realManager manages settings with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance. An empty path selects the
// default settings location.
func NewManager(configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads settings from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return config, nil
}

// GetConfigWithFallback loads settings, falling back to defaults when the
// file is missing or corrupted. A corrupted settings file is recovered
// locally and never surfaced to the caller.
func (c *realManager) GetConfigWithFallback() Config {
	config, err := c.GetConfig()
	if err != nil {
		return c.DefaultConfig()
	}
	return config
}

// SaveConfig writes settings to the embedded config path, replacing the
// file wholesale. The settings directory is created if needed.
func (c *realManager) SaveConfig(config Config) error {
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// SetGitHubToken stores the token, preserving other settings.
func (c *realManager) SetGitHubToken(token string) error {
	config := c.GetConfigWithFallback()
	config.GitHubToken = token
	return c.SaveConfig(config)
}

// SetDefaultOutputDir stores the default output directory, preserving other settings.
func (c *realManager) SetDefaultOutputDir(dir string) error {
	config := c.GetConfigWithFallback()
	config.DefaultOutputDir = dir
	return c.SaveConfig(config)
}

// EnsureConfigFile creates the settings file with defaults if it does not
// exist. It reports whether a new file was created.
func (c *realManager) EnsureConfigFile() (bool, error) {
	if _, err := os.Stat(c.configPath); err == nil {
		return false, nil
	}
	if err := c.SaveConfig(c.DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default settings.
func (c *realManager) DefaultConfig() Config {
	return Config{
		GitHubToken:      "",
		DefaultOutputDir: ".",
	}
}

// ResolveToken resolves the GitHub token to use: flag over environment
// variable over settings file.
func (c *realManager) ResolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token
	}
	return c.GetConfigWithFallback().GitHubToken
}
