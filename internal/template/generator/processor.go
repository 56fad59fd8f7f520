package generator

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
	"github.com/tacogips/scaffold/internal/template/parser"
)

// Processor processes individual files during generation.
type Processor interface {
	// Process renders a single template file and returns the content.
	// Binary files are returned unchanged.
	Process(ctx context.Context, entry model.SourceEntry, bindings parser.Bindings) ([]byte, error)

	// ShouldProcess determines if a file should be rendered.
	ShouldProcess(entry model.SourceEntry) bool
}

// FileProcessor implements Processor.
type FileProcessor struct {
	parser           parser.Parser
	binaryExtensions []string
}

// NewFileProcessor creates a new FileProcessor.
// binaryExtensions is a list of file extensions that should be treated as binary.
func NewFileProcessor(p parser.Parser, binaryExtensions []string) Processor {
	if binaryExtensions == nil {
		binaryExtensions = defaultBinaryExtensions()
	}
	return &FileProcessor{
		parser:           p,
		binaryExtensions: binaryExtensions,
	}
}

// defaultBinaryExtensions returns a default list of binary file extensions.
func defaultBinaryExtensions() []string {
	return []string{
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".webp",
		// Archives
		".zip", ".tar", ".gz", ".bz2", ".xz", ".zst", ".7z",
		// Executables and libraries
		".exe", ".dll", ".so", ".dylib", ".a", ".o", ".wasm",
		// Media
		".mp3", ".mp4", ".ogg", ".wav",
		// Documents
		".pdf",
		// Fonts
		".ttf", ".otf", ".woff", ".woff2",
	}
}

// ShouldProcess returns false for files marked binary, files with a binary
// extension and files with a NUL byte in the first 512 bytes.
func (p *FileProcessor) ShouldProcess(entry model.SourceEntry) bool {
	if entry.IsBinary {
		return false
	}

	ext := strings.ToLower(filepath.Ext(entry.Path))
	for _, binaryExt := range p.binaryExtensions {
		if ext == binaryExt {
			return false
		}
	}

	return !isBinaryContent(entry.Content)
}

// isBinaryContent checks the first 512 bytes for a NUL byte.
func isBinaryContent(content []byte) bool {
	checkLen := len(content)
	if checkLen > 512 {
		checkLen = 512
	}

	return bytes.IndexByte(content[:checkLen], 0) != -1
}

// Process renders a single template file.
func (p *FileProcessor) Process(ctx context.Context, entry model.SourceEntry, bindings parser.Bindings) ([]byte, error) {
	logger := logging.GetLogger("generator")

	if !p.ShouldProcess(entry) {
		logger.Debug().
			Str("path", entry.Path).
			Int("size", len(entry.Content)).
			Msg("Copying binary file without rendering")
		return entry.Content, nil
	}

	processed, err := p.parser.Parse(ctx, entry.Content, bindings)
	if err != nil {
		return nil, newGeneratorError(GeneratorProcessFailed, "failed to render template", entry.Path, err)
	}

	logger.Debug().
		Str("path", entry.Path).
		Int("input", len(entry.Content)).
		Int("output", len(processed)).
		Msg("Rendered content")
	return processed, nil
}
