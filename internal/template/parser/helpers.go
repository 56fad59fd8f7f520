package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Helper names available during content rendering.
const (
	HelperIncludeFile     = "include_file"
	HelperIncludeResource = "include_resource"
)

// MissingIncludeText is rendered by include_file when the shared file doesn't exist.
const MissingIncludeText = "NOT EXISTS"

// HelperRegistry is the immutable set of helpers available to content rendering.
type HelperRegistry struct {
	helpers map[string]interface{}
}

// NewHelperRegistry creates the registry for a templates repository.
// include_file reads from <repositoryRoot>/internal/files and
// include_resource from <repositoryRoot>/internal/resources.
func NewHelperRegistry(repositoryRoot string) *HelperRegistry {
	filesDir := filepath.Join(repositoryRoot, filepath.FromSlash(model.SharedFilesDir))
	resourcesDir := filepath.Join(repositoryRoot, filepath.FromSlash(model.ResourcesDir))

	return &HelperRegistry{
		helpers: map[string]interface{}{
			HelperIncludeFile: func(name interface{}) raymond.SafeString {
				return raymond.SafeString(includeFile(filesDir, helperArg(HelperIncludeFile, name)))
			},
			HelperIncludeResource: func(value interface{}) raymond.SafeString {
				return raymond.SafeString(includeResource(resourcesDir, helperArg(HelperIncludeResource, value)))
			},
		},
	}
}

// Names returns the registered helper names, sorted.
func (r *HelperRegistry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.helpers))
	for name := range r.helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *HelperRegistry) registerOn(tpl *raymond.Template) {
	if r == nil || len(r.helpers) == 0 {
		return
	}
	tpl.RegisterHelpers(r.helpers)
}

// helperArg returns the single helper argument as a string. raymond passes
// its *Options in place of the argument when the call has none.
func helperArg(helper string, arg interface{}) string {
	if _, ok := arg.(*raymond.Options); ok {
		panic(newHelperError(RenderFailed, helper, "missing argument", nil))
	}
	return raymond.Str(arg)
}

// includeFile returns the shared file verbatim, or MissingIncludeText.
// Helper failures panic with a *ParseError; raymond turns the panic into the
// error returned by Exec.
func includeFile(dir, name string) string {
	path, err := containedPath(dir, name)
	if err != nil {
		panic(newHelperError(SecurityViolation, HelperIncludeFile, err.Error(), nil))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger := logging.GetLogger("parser")
			logger.Debug().Str("file", name).Msg("Shared file not found")
			return MissingIncludeText
		}
		panic(newHelperError(RenderFailed, HelperIncludeFile, fmt.Sprintf("cannot read %s", name), err))
	}
	return string(data)
}

// includeResource returns the resource verbatim. A missing resource is an error.
func includeResource(dir, value string) string {
	path, err := containedPath(dir, value)
	if err != nil {
		panic(newHelperError(SecurityViolation, HelperIncludeResource, err.Error(), nil))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			panic(newHelperError(IncludeNotFound, HelperIncludeResource, fmt.Sprintf("resource %q not found", value), nil))
		}
		panic(newHelperError(RenderFailed, HelperIncludeResource, fmt.Sprintf("cannot read %s", value), err))
	}
	return string(data)
}

// containedPath joins name onto dir and rejects results outside dir.
func containedPath(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty name")
	}
	path := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q escapes %s", name, dir)
	}
	return path, nil
}
