package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Reporter receives one call per materialized file.
type Reporter func(out model.RenderedOutput, dest string)

// Writer writes rendered files below an output root.
type Writer interface {
	// Resolve maps a rendered relative path to its destination, rejecting
	// paths that are not strictly inside the root.
	Resolve(relPath string) (string, error)

	// Write writes a rendered file and returns its destination path.
	// Existing files are overwritten.
	Write(out model.RenderedOutput) (string, error)

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	root string
}

// NewFileWriter creates a new FileWriter rooted at root.
func NewFileWriter(root string) *FileWriter {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &FileWriter{root: filepath.Clean(root)}
}

// Root returns the output root.
func (w *FileWriter) Root() string {
	return w.root
}

// Resolve maps a rendered relative path to its destination.
func (w *FileWriter) Resolve(relPath string) (string, error) {
	native := filepath.FromSlash(relPath)
	if filepath.IsAbs(native) || strings.HasPrefix(relPath, "/") {
		return "", newGeneratorError(GeneratorPathError, "rendered path is absolute", relPath, nil)
	}

	dest := filepath.Join(w.root, native)
	rel, err := filepath.Rel(w.root, dest)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newGeneratorError(GeneratorPathError,
			fmt.Sprintf("rendered path escapes output directory %s", w.root), relPath, err)
	}
	return dest, nil
}

// Write writes content with the permission bits of out.Mode. Parent
// directories are created with 0755. The file is written to a temporary
// sibling and renamed into place.
func (w *FileWriter) Write(out model.RenderedOutput) (string, error) {
	dest, err := w.Resolve(out.Path)
	if err != nil {
		return "", err
	}
	logger := logging.GetLogger("writer")

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", newGeneratorError(GeneratorWriteFailed, "failed to create parent directory", dest, err)
	}

	perm := out.Mode.Perm()
	if perm == 0 {
		perm = 0644
	}
	// Owner must be able to rewrite the file on the next run.
	perm |= 0600

	f, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return "", newGeneratorError(GeneratorWriteFailed, "failed to create temporary file", dest, err)
	}
	tempFile := f.Name()

	_, err = f.Write(out.Content)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tempFile, perm)
	}
	if err != nil {
		_ = os.Remove(tempFile)
		return "", newGeneratorError(GeneratorWriteFailed, "failed to write file content", dest, err)
	}

	if err := os.Rename(tempFile, dest); err != nil {
		_ = os.Remove(tempFile)
		return "", newGeneratorError(GeneratorWriteFailed, "failed to rename temporary file", dest, err)
	}

	logger.Debug().
		Str("path", dest).
		Int("size", len(out.Content)).
		Str("mode", perm.String()).
		Msg("File written")
	return dest, nil
}

// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	root string
}

// NewFileWriter creates a new FileWriter rooted at root.
func NewFileWriter(root string) *FileWriter {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &FileWriter{root: filepath.Clean(root)}
}

// Root returns the output root.
func (w *FileWriter) Root() string {
	return w.root
}

// Resolve maps a rendered relative path to its destination.
func (w *FileWriter) Resolve(relPath string) (string, error) {
	native := filepath.FromSlash(relPath)
	if filepath.IsAbs(native) || strings.HasPrefix(relPath, "/") {
		return "", newGeneratorError(GeneratorPathError, "rendered path is absolute", relPath, nil)
	}

	dest := filepath.Join(w.root, native)
	rel, err := filepath.Rel(w.root, dest)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newGeneratorError(GeneratorPathError,
			fmt.Sprintf("rendered path escapes output directory %s", w.root), relPath, err)
	}
	return dest, nil
}

// Write writes content with the permission bits of out.Mode. Parent
// directories are created with 0755. The file is written to a temporary
// sibling and renamed into place.
func (w *FileWriter) Write(out model.RenderedOutput) (string, error) {
	dest, err := w.Resolve(out.Path)
	if err != nil {
		return "", err
	}
	logger := logging.GetLogger("writer")

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", newGeneratorError(GeneratorWriteFailed, "failed to create parent directory", dest, err)
	}

	perm := out.Mode.Perm()
	if perm == 0 {
		perm = 0644
	}
	// Owner must be able to rewrite the file on the next run.
	perm |= 0600

	f, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return "", newGeneratorError(GeneratorWriteFailed, "failed to create temporary file", dest, err)
	}
	tempFile := f.Name()

	_, err = f.Write(out.Content)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tempFile, perm)
	}
	if err != nil {
		_ = os.Remove(tempFile)
		return "", newGeneratorError(GeneratorWriteFailed, "failed to write file content", dest, err)
	}

	if err := os.Rename(tempFile, dest); err != nil {
		_ = os.Remove(tempFile)
		return "", newGeneratorError(GeneratorWriteFailed, "failed to rename temporary file", dest, err)
	}

	logger.Debug().
		Str("path", dest).
		Int("size", len(out.Content)).
		Str("mode", perm.String()).
		Msg("File written")
	return dest, nil
}

// CreateDir creates a directory and any necessary parent directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
