package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/template/model"
)

// applyAllCmd represents the apply-all command
var applyAllCmd = &cobra.Command{
	Use:   "apply-all",
	Short: "Apply every template into its own output directory",
	Long: `Apply every template under templates/ into <output>/<name>.

Destinations are created when missing and written without confirmation.

Examples:
  scaffold apply-all -o /tmp/rendered`,
	Args: cobra.NoArgs,
	RunE: runApplyAll,
}

var applyAllOutput string

func init() {
	applyAllCmd.Flags().StringVarP(&applyAllOutput, FlagOutput, "o", "", DescOutput)
}

func runApplyAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := app.ApplyAll(cmd.Context(), app.ApplyAllOptions{
		OutputDir:  applyAllOutput,
		Config:     cfg,
		Prompter:   SurveyPrompter{},
		Reporter:   func(_ model.RenderedOutput, dest string) { printWriting(dest, false) },
		OnTemplate: printCopied,
	})
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Applied %d templates (%d files)", len(result.Templates), result.Files))
	return nil
}
