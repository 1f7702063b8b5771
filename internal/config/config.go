package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"datacat/internal/adapters/filesystem"
	"datacat/internal/adapters/httpsource"
	"datacat/internal/domain"
	"datacat/internal/ports"
)

const (
	DefaultDataLocation = "."
	DefaultDebounce     = "300ms"
	DefaultTimeout      = "30s"
)

// Config is the datacat configuration file.
type Config struct {
	// Data is a directory or an http(s) base URL holding the documents.
	Data string `yaml:"data"`

	// Datasets maps dataset names to document file names.
	Datasets map[string]string `yaml:"datasets"`

	SessionDB string `yaml:"session_db"`
	Debounce  string `yaml:"debounce"`
	Timeout   string `yaml:"timeout"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DefaultDataLocation,
		Datasets: map[string]string{
			domain.DatasetDefault.String(): domain.DatasetDefault.DefaultFile(),
			domain.DatasetIMF.String():     domain.DatasetIMF.DefaultFile(),
		},
		Debounce: DefaultDebounce,
		Timeout:  DefaultTimeout,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $DATACAT_CONFIG, falling back to
// ~/.config/datacat/config.yaml.
func DefaultPath() string {
	if env := os.Getenv("DATACAT_CONFIG"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "datacat", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if _, err := cfg.Files(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DATACAT_DATA"); v != "" {
		c.Data = v
	}
	if v := os.Getenv("DATACAT_SESSION_DB"); v != "" {
		c.SessionDB = v
	}
	if v := os.Getenv("DATACAT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Files resolves the datasets table. Unknown dataset names are an error.
func (c *Config) Files() (map[domain.DatasetName]string, error) {
	files := make(map[domain.DatasetName]string, len(c.Datasets))
	for name, file := range c.Datasets {
		ds, err := domain.ParseDatasetName(name)
		if err != nil {
			return nil, fmt.Errorf("invalid datasets entry: %w", err)
		}
		files[ds] = file
	}
	return files, nil
}

// IsRemote reports whether Data is an http(s) URL.
func (c *Config) IsRemote() bool {
	return strings.HasPrefix(c.Data, "http://") || strings.HasPrefix(c.Data, "https://")
}

// Source builds the dataset source Data points at.
func (c *Config) Source() (ports.DatasetSource, error) {
	files, err := c.Files()
	if err != nil {
		return nil, err
	}
	if c.IsRemote() {
		return httpsource.NewSource(c.Data, files, httpsource.WithTimeout(c.GetTimeout())), nil
	}
	return filesystem.NewSource(c.Data, files), nil
}

// GetDebounce returns the search debounce delay.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d < 0 {
		return 300 * time.Millisecond
	}
	return d
}

// GetTimeout returns the HTTP fetch timeout.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
