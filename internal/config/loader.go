package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Loader defines the interface for loading the global configuration.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration, skipping the file layer if the file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// KoanfLoader implements Loader by layering defaults, a TOML or YAML file and
// SCAFFOLD_ environment variables.
type KoanfLoader struct{}

// NewLoader creates a new KoanfLoader instance.
func NewLoader() Loader {
	return &KoanfLoader{}
}

// Load loads configuration from the specified file path.
// An empty path selects DefaultConfigPath.
func (l *KoanfLoader) Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}
	return l.load(path)
}

// LoadOrDefault loads configuration or falls back to defaults and environment
// if the file doesn't exist.
func (l *KoanfLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			return l.load("")
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *KoanfLoader) Validate(config *Config) error {
	if strings.TrimSpace(config.TemplatesDir) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "templates_dir", "templates directory is required")
	}
	return nil
}

func (l *KoanfLoader) load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to load defaults", err)
	}

	// 2. Config file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to load environment", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	expanded, err := ExpandPath(cfg.TemplatesDir)
	if err != nil {
		return nil, &ConfigError{Type: ConfigInvalid, File: path, Field: "templates_dir", Message: "cannot expand path", Cause: err}
	}
	cfg.TemplatesDir = expanded

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, NewConfigErrorWithCause(ConfigInvalid, path,
			fmt.Sprintf("unsupported configuration format %q", filepath.Ext(path)), nil)
	}
}

// envKey maps SCAFFOLD_IDENTITY__FULL_NAME to identity.full_name.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
