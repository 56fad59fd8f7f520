package generator

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/tacogips/scaffold/internal/template/model"
)

// vcsDirs are never part of a template.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// ignoreFiles hold gitignore-style rules scoped to their directory.
var ignoreFiles = []string{".gitignore", ".ignore"}

// IsVCSEntry reports whether name is a version control metadata entry.
func IsVCSEntry(name string) bool {
	return vcsDirs[name]
}

// IsSpecialFile checks if a file is excluded from generation regardless of
// ignore rules: the template descriptor, at any depth.
func IsSpecialFile(relPath string) bool {
	return path.Base(filepath.ToSlash(relPath)) == model.DescriptorFile
}

// ignoreRules holds the patterns of every ignore file seen so far, in walk
// order. Each pattern is scoped to the directory of its file, and later
// (deeper) patterns take priority, so a nested "!pattern" re-includes.
type ignoreRules struct {
	patterns []gitignore.Pattern
}

// load reads the ignore files found directly in absDir. relDir is absDir
// relative to the template root, slash-separated, "" for the root.
func (r *ignoreRules) load(absDir, relDir string) error {
	domain := splitPath(relDir)

	var errs []error
	for _, name := range ignoreFiles {
		file := filepath.Join(absDir, name)
		info, err := os.Stat(file)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		data, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.patterns = append(r.patterns, parseIgnoreLines(data, domain)...)
	}
	return errors.Join(errs...)
}

// Matches reports whether relPath is ignored by the loaded rules.
func (r *ignoreRules) Matches(relPath string, isDir bool) bool {
	if len(r.patterns) == 0 {
		return false
	}
	return gitignore.NewMatcher(r.patterns).Match(splitPath(relPath), isDir)
}

func parseIgnoreLines(data []byte, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

func splitPath(relPath string) []string {
	relPath = filepath.ToSlash(relPath)
	if relPath == "" || relPath == "." {
		return nil
	}
	return strings.Split(relPath, "/")
}
