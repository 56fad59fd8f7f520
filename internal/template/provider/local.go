package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
)

// LocalProvider implements Provider for a templates repository on the local
// filesystem. Templates live in <RepositoryRoot>/templates/<name>/.
type LocalProvider struct {
	// RepositoryRoot is the templates repository root (config templates_dir).
	RepositoryRoot string
}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider(repositoryRoot string) *LocalProvider {
	return &LocalProvider{
		RepositoryRoot: repositoryRoot,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// TemplatesDir returns the directory holding one subdirectory per template.
func (p *LocalProvider) TemplatesDir() string {
	return filepath.Join(p.RepositoryRoot, model.TemplatesSubdir)
}

// List returns the names of all template directories, sorted. Hidden
// directories are skipped.
func (p *LocalProvider) List(ctx context.Context) ([]string, error) {
	logger := logging.GetLogger("provider")
	dir := p.TemplatesDir()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", dir).Msg("Templates directory does not exist")
			return nil, NewProviderError(ProviderNotFound, p.Name(), dir, "templates directory not found", err)
		}
		return nil, NewFetchError(p.Name(), dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		isDir := entry.IsDir()
		if !isDir && entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		if isDir {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	logger.Debug().Int("count", len(names)).Str("path", dir).Msg("Listed templates")
	return names, nil
}

// Fetch resolves a template by name and loads its descriptor.
func (p *LocalProvider) Fetch(ctx context.Context, name string) (*model.Template, error) {
	logger := logging.GetLogger("provider")
	logger.Debug().Str("template", name).Msg("Fetching template")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := p.resolvePath(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", root).Msg("Template does not exist")
			return nil, NewNotFoundError(p.Name(), root)
		}
		return nil, NewFetchError(p.Name(), root, err)
	}
	if !info.IsDir() {
		return nil, NewInvalidTemplateError(p.Name(), root, "path must be a directory", nil)
	}

	desc, err := LoadDescriptor(root)
	if err != nil {
		return nil, err
	}

	return &model.Template{
		Name:           name,
		RootPath:       root,
		RepositoryRoot: p.RepositoryRoot,
		Descriptor:     desc,
	}, nil
}

// resolvePath maps a template name to its directory. The name must be a
// single path segment so the result stays under TemplatesDir.
func (p *LocalProvider) resolvePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", NewInvalidNameError(p.Name(), name)
	}

	base := p.TemplatesDir()
	absPath := filepath.Join(base, name)
	if !isSubPath(base, absPath) {
		return "", NewInvalidNameError(p.Name(), name)
	}
	return absPath, nil
}

// isSubPath checks if child is under parent directory.
func isSubPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != "." && !filepath.IsAbs(rel) && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
