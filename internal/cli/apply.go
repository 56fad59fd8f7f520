package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/template/model"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <target_dir>",
	Short: "Apply a template to an existing directory",
	Long: `Render a template into an existing target directory.

The target's base name becomes {{project_name}}. Variables declared in the
template's template.toml are taken from their literal value or default, or
asked for interactively. When the target is not empty you are asked to
confirm unless --force is given.

Examples:
  scaffold apply ./demo
  scaffold apply ./demo -n go-cli
  scaffold apply ./demo -n go-cli --force
  scaffold apply ./demo -n go-cli --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

// Apply command flags
var (
	applyTemplateName string
	applyForce        bool
	applyWatch        bool
	applyDryRun       bool
)

func init() {
	applyCmd.Flags().StringVarP(&applyTemplateName, FlagTemplateName, "n", "", DescTemplateName)
	applyCmd.Flags().BoolVarP(&applyForce, FlagForce, "f", false, DescForce)
	applyCmd.Flags().BoolVarP(&applyWatch, FlagWatch, "w", false, DescWatch)
	applyCmd.Flags().BoolVar(&applyDryRun, FlagDryRun, false, DescDryRun)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interactive := SurveyPrompter{}
	result, err := app.Apply(cmd.Context(), app.ApplyOptions{
		TargetDir:    args[0],
		TemplateName: applyTemplateName,
		Force:        applyForce,
		Watch:        applyWatch,
		DryRun:       applyDryRun,
		Config:       cfg,
		Prompter:     interactive,
		Confirmer:    interactive,
		Selector:     interactive,
		Reporter: func(_ model.RenderedOutput, dest string) {
			printWriting(dest, applyDryRun)
		},
	})
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		printWarning(fmt.Sprintf("skipped: %v", e))
	}

	if applyDryRun {
		for _, dir := range result.Directories {
			printInfo(fmt.Sprintf("would create directory: %s", dir))
		}
		printInfo(fmt.Sprintf("No files written (dry run, %d files).", len(result.DryRunFiles)))
		return nil
	}

	printSuccess(fmt.Sprintf("Applied %s (%d files)", result.Template.Name, len(result.Files)))
	return nil
}
