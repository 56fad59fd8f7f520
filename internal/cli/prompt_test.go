package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/template/model"
)

// stubTerminal replaces the terminal check and survey with canned answers.
func stubTerminal(t *testing.T, interactive bool, answer interface{}, err error) *[]survey.Prompt {
	t.Helper()
	oldInteractive, oldAsk := isInteractive, askOne
	t.Cleanup(func() { isInteractive, askOne = oldInteractive, oldAsk })

	var asked []survey.Prompt
	isInteractive = func() bool { return interactive }
	askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		asked = append(asked, p)
		if err != nil {
			return err
		}
		switch r := response.(type) {
		case *string:
			*r = answer.(string)
		case *bool:
			*r = answer.(bool)
		}
		return nil
	}
	return &asked
}

func TestSurveyPrompter_Prompt(t *testing.T) {
	asked := stubTerminal(t, true, "acme", nil)

	got, err := SurveyPrompter{}.Prompt(context.Background(), app.PromptRequest{Name: "owner", Label: "Owner"})
	require.NoError(t, err)
	assert.Equal(t, "acme", got)

	require.Len(t, *asked, 1)
	input, ok := (*asked)[0].(*survey.Input)
	require.True(t, ok)
	assert.Equal(t, "Owner", input.Message)
}

func TestSurveyPrompter_PromptBooleanReadsText(t *testing.T) {
	asked := stubTerminal(t, true, "yes please", nil)

	got, err := SurveyPrompter{}.Prompt(context.Background(), app.PromptRequest{Name: "private", Label: "private", Type: model.VarTypeBool})
	require.NoError(t, err)
	assert.Equal(t, "yes please", got)

	input, ok := (*asked)[0].(*survey.Input)
	require.True(t, ok)
	assert.Contains(t, input.Help, "boolean")
}

func TestSurveyPrompter_ConfirmDefaultsToNo(t *testing.T) {
	asked := stubTerminal(t, true, false, nil)

	ok, err := SurveyPrompter{}.Confirm(context.Background(), "Continue?")
	require.NoError(t, err)
	assert.False(t, ok)

	confirm := (*asked)[0].(*survey.Confirm)
	assert.False(t, confirm.Default)
	assert.Equal(t, "Continue?", confirm.Message)
}

func TestSurveyPrompter_Select(t *testing.T) {
	asked := stubTerminal(t, true, "beta", nil)

	got, err := SurveyPrompter{}.Select(context.Background(), "Select a template", []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, "beta", got)

	sel := (*asked)[0].(*survey.Select)
	assert.Equal(t, []string{"alpha", "beta"}, sel.Options)
}

func TestSurveyPrompter_InterruptCancels(t *testing.T) {
	stubTerminal(t, true, nil, terminal.InterruptErr)

	_, err := SurveyPrompter{}.Select(context.Background(), "Select a template", []string{"alpha"})
	assert.ErrorIs(t, err, app.ErrCancelled)
}

func TestSurveyPrompter_NotInteractive(t *testing.T) {
	asked := stubTerminal(t, false, "ignored", nil)

	_, err := SurveyPrompter{}.Prompt(context.Background(), app.PromptRequest{Name: "owner", Label: "owner"})
	assert.ErrorIs(t, err, errNotInteractive)

	_, err = SurveyPrompter{}.Confirm(context.Background(), "Continue?")
	assert.ErrorIs(t, err, errNotInteractive)

	assert.Empty(t, *asked)
}

func TestSurveyPrompter_OtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	stubTerminal(t, true, nil, boom)

	_, err := SurveyPrompter{}.Confirm(context.Background(), "Continue?")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, app.ErrCancelled)
}
