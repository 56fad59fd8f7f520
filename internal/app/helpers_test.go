package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/config"
)

type fakePrompter struct {
	answers map[string]string
	err     error
	calls   []PromptRequest
}

func (f *fakePrompter) Prompt(_ context.Context, req PromptRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.answers[req.Name], nil
}

type fakeConfirmer struct {
	answer bool
	err    error
	calls  int
}

func (f *fakeConfirmer) Confirm(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.answer, f.err
}

type fakeSelector struct {
	choice     string
	err        error
	candidates []string
}

func (f *fakeSelector) Select(_ context.Context, _ string, candidates []string) (string, error) {
	f.candidates = candidates
	return f.choice, f.err
}

// writeTree creates files under root. Keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// newRepo creates a templates repository and a config pointing at it.
func newRepo(t *testing.T, files map[string]string) *config.Config {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "templates"), 0755))
	writeTree(t, root, files)
	return &config.Config{
		TemplatesDir: root,
		Identity:     config.IdentityConfig{FullName: "Jane Doe", License: "MIT"},
	}
}

// newTarget creates an empty directory with the given base name.
func newTarget(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}
