package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/scaffold/internal/app"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names, err := app.ListTemplates(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		printWarning("no templates found")
		return nil
	}
	for _, name := range names {
		printInfo(name)
	}
	return nil
}
