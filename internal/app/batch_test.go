package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAll(t *testing.T) {
	cfg := newRepo(t, map[string]string{
		"templates/beta/b.txt":  "{{project_name}}",
		"templates/alpha/a.txt": "{{project_name}}",
	})
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(out, "alpha"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "alpha", "a.txt"), []byte("old"), 0644))

	var copied [][2]string
	result, err := ApplyAll(context.Background(), ApplyAllOptions{
		OutputDir:  out,
		Config:     cfg,
		OnTemplate: func(src, dst string) { copied = append(copied, [2]string{src, dst}) },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, result.Templates)
	assert.Equal(t, 2, result.Files)
	assert.Equal(t, "alpha", readFile(t, filepath.Join(out, "alpha", "a.txt")))
	assert.Equal(t, "beta", readFile(t, filepath.Join(out, "beta", "b.txt")))

	require.Len(t, copied, 2)
	assert.Equal(t, filepath.Join(cfg.TemplatesDir, "templates", "alpha"), copied[0][0])
	assert.Equal(t, filepath.Join(out, "alpha"), copied[0][1])
}

func TestApplyAll_UsesConfiguredOutputDir(t *testing.T) {
	cfg := newRepo(t, map[string]string{"templates/alpha/a.txt": "a"})
	cfg.Batch.OutputDir = t.TempDir()

	_, err := ApplyAll(context.Background(), ApplyAllOptions{Config: cfg})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(cfg.Batch.OutputDir, "alpha", "a.txt"))
}

func TestApplyAll_RequiresOutputDir(t *testing.T) {
	cfg := newRepo(t, map[string]string{"templates/alpha/a.txt": "a"})

	_, err := ApplyAll(context.Background(), ApplyAllOptions{Config: cfg})
	require.Error(t, err)
	assert.True(t, IsType(err, ValidationFailed))
}

func TestApplyAll_StopsAtFirstFailure(t *testing.T) {
	cfg := newRepo(t, map[string]string{
		"templates/alpha/a.txt": "{{#if}}",
		"templates/beta/b.txt":  "b",
	})
	out := t.TempDir()

	result, err := ApplyAll(context.Background(), ApplyAllOptions{OutputDir: out, Config: cfg})
	require.Error(t, err)
	assert.True(t, IsType(err, GenerationFailed))
	assert.Empty(t, result.Templates)
	assert.NoDirExists(t, filepath.Join(out, "beta"))
}

func TestListTemplates(t *testing.T) {
	cfg := newRepo(t, map[string]string{
		"templates/zeta/z.txt":    "z",
		"templates/alpha/a.txt":   "a",
		"templates/.hidden/h.txt": "h",
		"templates/file.txt":      "f",
	})

	names, err := ListTemplates(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestListTemplates_MissingRepository(t *testing.T) {
	cfg := newRepo(t, nil)
	require.NoError(t, os.RemoveAll(filepath.Join(cfg.TemplatesDir, "templates")))

	_, err := ListTemplates(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, IsType(err, TemplateMissing))
}
