package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/template/model"
)

var testIdentity = config.IdentityConfig{FullName: "Jane Doe", License: "MIT"}

func TestResolveVariables_LiteralsNeverPrompt(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "project_type", Kind: model.VariableLiteral, Literal: "app"},
		{Name: "lang", Kind: model.VariableLiteral, Literal: "go"},
	}}
	prompter := &fakePrompter{}

	bindings, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), prompter)
	require.NoError(t, err)

	assert.Empty(t, prompter.calls)
	assert.Equal(t, []string{"full_name", "lang", "license", "project_name", "project_type"}, bindings.Names())
	assert.Equal(t, map[string]string{
		"project_type": "app",
		"lang":         "go",
		"project_name": "demo",
		"full_name":    "Jane Doe",
		"license":      "MIT",
	}, bindings.All())
}

func TestResolveVariables_SpecWithDefault(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "port", Kind: model.VariableSpec, Default: "8080", HasDefault: true},
	}}
	prompter := &fakePrompter{}

	bindings, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), prompter)
	require.NoError(t, err)

	assert.Empty(t, prompter.calls)
	v, ok := bindings.Get("port")
	assert.True(t, ok)
	assert.Equal(t, "8080", v)
}

func TestResolveVariables_PromptsOncePerUndefaultedSpec(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "owner", Kind: model.VariableSpec, Prompt: "Repository owner"},
		{Name: "private", Kind: model.VariableSpec, Type: model.VarTypeBool},
	}}
	prompter := &fakePrompter{answers: map[string]string{"owner": "acme", "private": "true"}}

	bindings, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), prompter)
	require.NoError(t, err)

	require.Len(t, prompter.calls, 2)
	assert.Equal(t, PromptRequest{Name: "owner", Label: "Repository owner"}, prompter.calls[0])
	assert.Equal(t, PromptRequest{Name: "private", Label: "private", Type: model.VarTypeBool}, prompter.calls[1])

	owner, _ := bindings.Get("owner")
	assert.Equal(t, "acme", owner)
	private, _ := bindings.Get("private")
	assert.Equal(t, "true", private)
}

func TestResolveVariables_BuiltinsOverrideDescriptor(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "project_name", Kind: model.VariableLiteral, Literal: "other"},
		{Name: "license", Kind: model.VariableLiteral, Literal: "GPL"},
	}}

	bindings, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), nil)
	require.NoError(t, err)

	name, _ := bindings.Get("project_name")
	assert.Equal(t, "demo", name)
	license, _ := bindings.Get("license")
	assert.Equal(t, "MIT", license)
}

func TestResolveVariables_ValuesAreVerbatim(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "raw", Kind: model.VariableLiteral, Literal: "<a href=\"x\">{{y}}</a>"},
	}}

	bindings, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), nil)
	require.NoError(t, err)

	raw, _ := bindings.Get("raw")
	assert.Equal(t, "<a href=\"x\">{{y}}</a>", raw)
}

func TestResolveVariables_PromptFailure(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "owner", Kind: model.VariableSpec},
	}}
	cause := errors.New("stdin closed")

	_, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), &fakePrompter{err: cause})
	require.Error(t, err)
	assert.True(t, IsType(err, PromptFailed))
	assert.ErrorIs(t, err, cause)
}

func TestResolveVariables_NilPrompter(t *testing.T) {
	desc := model.Descriptor{Variables: []model.Variable{
		{Name: "owner", Kind: model.VariableSpec},
	}}

	_, err := ResolveVariables(context.Background(), desc, testIdentity, newTarget(t, "demo"), nil)
	require.Error(t, err)
	assert.True(t, IsType(err, PromptFailed))
}

func TestProjectName(t *testing.T) {
	name, err := ProjectName("/tmp/work/demo/")
	require.NoError(t, err)
	assert.Equal(t, "demo", name)

	_, err = ProjectName("/")
	assert.Error(t, err)
}
