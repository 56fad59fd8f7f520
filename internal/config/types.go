package config

// Config represents the global scaffold configuration.
type Config struct {
	// TemplatesDir is the root of the templates repository. It contains
	// templates/<name>/ and the shared internal/files/ snippets.
	TemplatesDir string `koanf:"templates_dir"`
	// Identity holds author values injected into every template.
	Identity IdentityConfig `koanf:"identity"`
	// Batch configures the apply-all command.
	Batch BatchConfig `koanf:"batch"`
}

// IdentityConfig represents author identity values.
type IdentityConfig struct {
	// FullName is bound to the full_name template variable.
	FullName string `koanf:"full_name"`
	// License is bound to the license template variable.
	License string `koanf:"license"`
}

// BatchConfig represents settings for re-applying every template.
type BatchConfig struct {
	// OutputDir receives one subdirectory per template.
	OutputDir string `koanf:"output_dir"`
}
