package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/tacogips/scaffold/internal/app"
)

// errNotInteractive is returned when a prompt is needed but stdin is not a terminal.
var errNotInteractive = errors.New("stdin is not a terminal")

// isInteractive reports whether stdin is attached to a terminal.
var isInteractive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// askOne is survey.AskOne, replaced in tests.
var askOne = survey.AskOne

// SurveyPrompter implements app.Prompter, app.Confirmer and app.Selector with
// survey prompts on the controlling terminal.
type SurveyPrompter struct{}

var (
	_ app.Prompter  = SurveyPrompter{}
	_ app.Confirmer = SurveyPrompter{}
	_ app.Selector  = SurveyPrompter{}
)

// Prompt asks for a variable value as one line of text. The variable type is
// advisory and only shown in the help text.
func (SurveyPrompter) Prompt(ctx context.Context, req app.PromptRequest) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}

	help := fmt.Sprintf("Value for {{%s}}", req.Name)
	if req.Type != "" {
		help = fmt.Sprintf("%s (%s)", help, req.Type)
	}

	var result string
	prompt := &survey.Input{
		Message: req.Label,
		Help:    help,
	}
	if err := askOne(prompt, &result); err != nil {
		return "", translateSurveyErr(err)
	}
	return result, nil
}

// Confirm asks a yes/no question defaulting to no.
func (SurveyPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ready(ctx); err != nil {
		return false, err
	}

	var result bool
	prompt := &survey.Confirm{Message: message, Default: false}
	if err := askOne(prompt, &result); err != nil {
		return false, translateSurveyErr(err)
	}
	return result, nil
}

// Select asks the user to pick one candidate.
func (SurveyPrompter) Select(ctx context.Context, message string, candidates []string) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}

	var result string
	prompt := &survey.Select{Message: message, Options: candidates}
	if err := askOne(prompt, &result); err != nil {
		return "", translateSurveyErr(err)
	}
	return result, nil
}

func ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !isInteractive() {
		return errNotInteractive
	}
	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return app.ErrCancelled
	}
	return err
}
