package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/scaffold/internal/template/model"
)

// setupRepository creates a templates repository with shared files and resources.
func setupRepository(t *testing.T, files, resources map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for dir, entries := range map[string]map[string]string{
		model.SharedFilesDir: files,
		model.ResourcesDir:   resources,
	} {
		for name, content := range entries {
			path := filepath.Join(root, filepath.FromSlash(dir), filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		}
	}
	return root
}

func TestParse_Substitution(t *testing.T) {
	bindings := NewBindings(map[string]string{
		"project_name": "my-app",
		"full_name":    "Jane <jane@example.com>",
		"license":      "MPL-2.0",
	})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "name: {{project_name}}", "name: my-app"},
		{"multiple", "{{project_name}} by {{full_name}} ({{license}})", "my-app by Jane <jane@example.com> (MPL-2.0)"},
		{"no escaping", "author = \"{{full_name}}\"", "author = \"Jane <jane@example.com>\""},
		{"missing binding renders empty", "[{{unknown}}]", "[]"},
		{"no placeholders", "plain text\n", "plain text\n"},
	}

	p := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Parse(context.Background(), []byte(tt.input), bindings)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestParseFilename(t *testing.T) {
	bindings := NewBindings(map[string]string{"project_name": "my-app"})
	p := NewParser(NewHelperRegistry(t.TempDir()))

	out, err := p.ParseFilename(context.Background(), []byte("src/{{project_name}}/main.go"), bindings)
	require.NoError(t, err)
	assert.Equal(t, "src/my-app/main.go", string(out))
}

func TestParse_IncludeFile(t *testing.T) {
	root := setupRepository(t, map[string]string{
		"LICENSE-MPL": "Mozilla Public License <2.0>\n",
		"sub/snippet": "nested",
	}, nil)
	p := NewParser(NewHelperRegistry(root))
	bindings := NewBindings(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"existing file verbatim", `{{include_file "LICENSE-MPL"}}`, "Mozilla Public License <2.0>\n"},
		{"nested file", `[{{include_file "sub/snippet"}}]`, "[nested]"},
		{"missing file", `{{include_file "nope"}}`, MissingIncludeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Parse(context.Background(), []byte(tt.input), bindings)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestParse_IncludeFileEscape(t *testing.T) {
	root := setupRepository(t, map[string]string{"a": "a"}, nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret"), []byte("secret"), 0644))

	p := NewParser(NewHelperRegistry(root))
	_, err := p.Parse(context.Background(), []byte(`{{include_file "../../secret"}}`), NewBindings(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes")
}

func TestParse_IncludeResource(t *testing.T) {
	root := setupRepository(t, nil, map[string]string{"gitignore/go": "/bin\n"})
	p := NewParser(NewHelperRegistry(root))

	out, err := p.Parse(context.Background(), []byte(`{{include_resource "gitignore/go"}}`), NewBindings(nil))
	require.NoError(t, err)
	assert.Equal(t, "/bin\n", string(out))

	_, err = p.Parse(context.Background(), []byte(`{{include_resource "missing"}}`), NewBindings(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParse_HelperMissingArgument(t *testing.T) {
	root := setupRepository(t, map[string]string{"a.txt": "a"}, map[string]string{"r.txt": "r"})
	p := NewParser(NewHelperRegistry(root))

	for _, helper := range []string{HelperIncludeFile, HelperIncludeResource} {
		t.Run(helper, func(t *testing.T) {
			out, err := p.Parse(context.Background(), []byte("{{"+helper+"}}"), NewBindings(nil))
			require.Error(t, err)
			assert.Nil(t, out)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, RenderFailed, pe.Type)
			assert.Equal(t, helper, pe.Helper)
			assert.Contains(t, err.Error(), "missing argument")
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	p := NewParser(nil)
	_, err := p.Parse(context.Background(), []byte("{{#if x}}unclosed"), NewBindings(nil))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, SyntaxError, pe.Type)
}

func TestValidate(t *testing.T) {
	p := NewParser(nil)
	assert.NoError(t, p.Validate(context.Background(), []byte("{{a}} {{#if b}}x{{/if}}")))
	assert.Error(t, p.Validate(context.Background(), []byte("{{a")))
}

func TestParse_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParser(nil).Parse(ctx, []byte("x"), NewBindings(nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHelperRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{HelperIncludeFile, HelperIncludeResource}, NewHelperRegistry("/repo").Names())

	var nilRegistry *HelperRegistry
	assert.Empty(t, nilRegistry.Names())
}

func TestContainedPath(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"file", false},
		{"a/b", false},
		{"a/../b", false},
		{"../x", true},
		{"..", true},
		{".", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := containedPath("/repo/internal/files", tt.name)
		assert.Equal(t, tt.wantErr, err != nil, "name %q", tt.name)
	}
}

func TestBindings_ReadOnlyCopy(t *testing.T) {
	src := map[string]string{"a": "1"}
	b := NewBindings(src)
	src["a"] = "changed"

	v, ok := b.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	all := b.All()
	all["a"] = "mutated"
	v, _ = b.Get("a")
	assert.Equal(t, "1", v)

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []string{"a"}, b.Names())
}
