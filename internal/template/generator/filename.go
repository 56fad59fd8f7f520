package generator

import (
	"context"
	"path/filepath"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/parser"
)

// ProcessFilename renders a root-relative template path with the bindings.
// The whole path is rendered at once, so a placeholder may expand to several
// segments. The result is not validated here; FileWriter rejects paths that
// leave the output root.
func ProcessFilename(ctx context.Context, filePath string, bindings parser.Bindings, p parser.Parser) (string, error) {
	filePath = filepath.ToSlash(filePath)

	rendered, err := p.ParseFilename(ctx, []byte(filePath), bindings)
	if err != nil {
		return "", newGeneratorError(GeneratorPathRenderFailed, "failed to render path", filePath, err)
	}

	result := string(rendered)
	if result != filePath {
		logger := logging.GetLogger("generator")
		logger.Debug().
			Str("from", filePath).
			Str("to", result).
			Msg("Rendered path")
	}
	return result, nil
}
