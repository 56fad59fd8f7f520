package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is used for the config directory and environment prefix.
	AppName = "scaffold"
	// EnvPrefix is the prefix of environment variables read by the loader.
	EnvPrefix = "SCAFFOLD_"
	// DefaultConfigFile is the config file name searched in the XDG config dir.
	DefaultConfigFile = "config.toml"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TemplatesDir: "",
		Identity: IdentityConfig{
			FullName: "",
			License:  "MPL-2.0",
		},
		Batch: BatchConfig{
			OutputDir: "",
		},
	}
}

// defaultValues returns DefaultConfig flattened for the koanf confmap provider.
func defaultValues() map[string]interface{} {
	cfg := DefaultConfig()
	return map[string]interface{}{
		"templates_dir":      cfg.TemplatesDir,
		"identity.full_name": cfg.Identity.FullName,
		"identity.license":   cfg.Identity.License,
		"batch.output_dir":   cfg.Batch.OutputDir,
	}
}

// DefaultConfigPath returns the default configuration file path.
// An existing config.toml, config.yaml or config.yml in the XDG config
// directory is preferred, in that order.
func DefaultConfigPath() string {
	for _, name := range []string{DefaultConfigFile, "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return path
		}
	}
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}
