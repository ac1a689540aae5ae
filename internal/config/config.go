// Package config loads wordfinder settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Input contains settings for reading sources.
type Input struct {
	Encoding string `toml:"encoding"`
}

// Cache contains settings for the normalization cache.
type Cache struct {
	// NormalizerSize bounds the number of memoized texts. Zero keeps every text.
	NormalizerSize int `toml:"normalizer_size"`
}

// Output contains defaults for saved results.
type Output struct {
	Format string `toml:"format"`
	Sort   string `toml:"sort"`
}

// Logging contains diagnostic output settings.
type Logging struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Server contains settings for the query server.
type Server struct {
	Bind                string `toml:"bind"`
	ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `toml:"write_timeout_seconds"`
}

// Config is the full configuration.
type Config struct {
	Input   Input   `toml:"input"`
	Cache   Cache   `toml:"cache"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
	Server  Server  `toml:"server"`
}

const (
	defaultConfigPath = "~/.config/wordfinder/config.toml"
	projectConfigName = "wordfinder.toml"
)

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file yields the
// defaults. The resolved path and whether it existed are returned alongside the config.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		exists, err := fileExists(expanded)
		return expanded, exists, err
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	if exists, err := fileExists(defaultPath); err != nil || exists {
		return defaultPath, exists, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	if exists, err := fileExists(projectPath); err != nil || exists {
		return projectPath, exists, err
	}

	return defaultPath, false, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat config: %w", err)
	}
	return !info.IsDir(), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	return filepath.Abs(pathValue)
}

// CreateSample writes the default configuration to path, refusing to overwrite.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if exists, err := fileExists(expanded); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("config already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(expanded, data, 0o644)
}
