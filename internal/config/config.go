package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Config holds the application configuration
type Config struct {
	SearchPaths  []string     `json:"search_paths"`  // Extra base directories to scan for JDKs
	UpdateConfig UpdateConfig `json:"update_config"` // Auto-update configuration
	fs           afero.Fs
	configPath   string
}

// UpdateConfig holds settings for auto-update feature
type UpdateConfig struct {
	Enabled     bool      `json:"enabled"`      // Master toggle for update functionality
	AutoCheck   bool      `json:"auto_check"`   // Check for updates on startup
	LastCheck   time.Time `json:"last_check"`   // Last time update check was performed
	SkipVersion string    `json:"skip_version"` // Version user chose to skip
}

// Load loads the configuration from the user's config directory
func Load(fs afero.Fs) (*Config, error) {
	return LoadFrom(fs, Path())
}

// LoadFrom loads the configuration at configPath. A missing file yields
// the defaults.
func LoadFrom(fs afero.Fs, configPath string) (*Config, error) {
	cfg := &Config{
		SearchPaths: make([]string, 0),
		UpdateConfig: UpdateConfig{
			Enabled:   true,
			AutoCheck: true,
		},
		fs:         fs,
		configPath: configPath,
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	paths := cfg.SearchPaths
	cfg.SearchPaths = make([]string, 0, len(paths))
	for _, p := range paths {
		cfg.AddSearchPath(p)
	}

	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return afero.WriteFile(c.fs, c.configPath, data, 0o644)
}

// ConfigPath returns the file the configuration is stored in.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// AddSearchPath adds a search path for auto-detection
func (c *Config) AddSearchPath(path string) bool {
	path = filepath.Clean(strings.TrimSpace(path))
	if path == "" || path == "." || c.HasSearchPath(path) {
		return false
	}

	c.SearchPaths = append(c.SearchPaths, path)
	return true
}

// RemoveSearchPath removes a search path
func (c *Config) RemoveSearchPath(path string) bool {
	path = filepath.Clean(path)

	for i, p := range c.SearchPaths {
		if samePath(p, path) {
			c.SearchPaths = append(c.SearchPaths[:i], c.SearchPaths[i+1:]...)
			return true
		}
	}
	return false
}

// HasSearchPath checks if a path exists in search paths
func (c *Config) HasSearchPath(path string) bool {
	path = filepath.Clean(path)

	for _, p := range c.SearchPaths {
		if samePath(p, path) {
			return true
		}
	}
	return false
}

// samePath compares paths case-insensitively only where the filesystem is.
func samePath(a, b string) bool {
	if filepath.Separator == '\\' {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Path returns the path to the configuration file
// Following XDG Base Directory specification
func Path() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "jvx", "jvx.json")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return filepath.Join(homeDir, ".config", "jvx", "jvx.json")
}
