package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dylan-marx/rangesum/internal/types"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the global config file inside its directory.
const FileName = "config.yml"

// GlobalConfig represents the system-wide or user-specific global configuration.
type GlobalConfig struct {
	Strict      bool   `yaml:"strict"`
	LogLevel    string `yaml:"log_level"`
	Interactive bool   `yaml:"interactive"`
}

// Log levels accepted in log_level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultGlobalConfig returns the hardcoded default configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Strict:      false,
		LogLevel:    "info",
		Interactive: true,
	}
}

// LoadGlobal loads the global configuration from the specified path or standard locations.
func LoadGlobal(customPath string) (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	// 1. Determine config path
	path := customPath
	if path == "" {
		path = findGlobalConfig()
	}

	if path == "" {
		// No config found, return defaults
		return &cfg, nil
	}

	// 2. Read and parse
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.ErrConfigNotFound{Path: path}
		}
		return nil, fmt.Errorf("failed to read global config at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse global config at %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, types.ErrConfigInvalid{Path: path, Reason: err.Error()}
	}

	return &cfg, nil
}

// Validate checks field values that yaml decoding cannot.
func Validate(cfg *GlobalConfig) error {
	if cfg.LogLevel == "" {
		return nil
	}
	for _, lvl := range LogLevels {
		if cfg.LogLevel == lvl {
			return nil
		}
	}
	return fmt.Errorf("unknown log_level %q (want one of %v)", cfg.LogLevel, LogLevels)
}

// DefaultPath returns where init writes the user config.
func DefaultPath() (string, error) {
	dir := xdgConfigHome()
	if dir == "" {
		return "", fmt.Errorf("cannot determine config directory: set XDG_CONFIG_HOME or HOME")
	}
	return filepath.Join(dir, "rangesum", FileName), nil
}

// Write marshals cfg to path, creating parent directories.
// An existing file is only replaced when force is set.
func Write(path string, cfg GlobalConfig, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return types.ErrConfigExists{Path: path}
		}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func xdgConfigHome() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}
	return xdgConfig
}

// findGlobalConfig searches for the global config file in standard locations.
func findGlobalConfig() string {
	if xdgConfig := xdgConfigHome(); xdgConfig != "" {
		path := filepath.Join(xdgConfig, "rangesum", FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// /etc fallback
	etcPath := filepath.Join("/etc", "rangesum", FileName)
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}
