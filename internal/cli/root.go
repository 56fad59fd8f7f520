package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/logging"
)

// Global flags
var (
	globalConfig  string
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Apply project templates to directories",
	Long: `scaffold renders a template directory into an existing target directory.

Templates live under <templates_dir>/templates/<name>/. File names and file
contents may contain handlebars placeholders such as {{project_name}}. An
optional template.toml declares extra variables.

Shared files are read from <templates_dir>/internal/files and resources from
<templates_dir>/internal/resources.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.Options{
			Debug:   globalDebug,
			Quiet:   globalQuiet,
			NoColor: globalNoColor,
		})
		setColorEnabled(!globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(applyAllCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and validates the global configuration. An explicit
// --config path must exist; the default location may be absent.
func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if globalConfig != "" {
		cfg, err = loader.Load(globalConfig)
	} else {
		cfg, err = loader.LoadOrDefault("")
	}
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
