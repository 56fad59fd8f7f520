package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig       = "config"
	FlagDebug        = "debug"
	FlagNoColor      = "no-color"
	FlagQuiet        = "quiet"
	FlagTemplateName = "template-name"
	FlagForce        = "force"
	FlagWatch        = "watch"
	FlagDryRun       = "dry-run"
	FlagOutput       = "output"

	// Flag descriptions
	DescConfig       = "Path to config file (TOML or YAML)"
	DescDebug        = "Enable debug logging"
	DescNoColor      = "Disable colored output"
	DescQuiet        = "Suppress output"
	DescTemplateName = "Template to apply; prompts for one when omitted"
	DescForce        = "Write into a non-empty target without asking"
	DescWatch        = "Accepted for compatibility; has no effect"
	DescDryRun       = "Show files that would be written without writing them"
	DescOutput       = "Output directory for apply-all (defaults to batch.output_dir)"
)
