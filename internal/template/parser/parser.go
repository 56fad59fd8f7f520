package parser

import (
	"context"
	"errors"

	"github.com/aymerick/raymond"

	"github.com/tacogips/scaffold/internal/logging"
)

// Parser renders handlebars templates against Bindings. Placeholders are
// substituted without HTML escaping in both paths and contents.
type Parser interface {
	// Parse renders file contents with the bindings and the helper registry.
	Parse(ctx context.Context, input []byte, bindings Bindings) ([]byte, error)

	// ParseFilename renders a root-relative path with the bindings only.
	// Helpers are not available.
	ParseFilename(ctx context.Context, input []byte, bindings Bindings) ([]byte, error)

	// Validate checks template syntax without rendering.
	Validate(ctx context.Context, input []byte) error
}

// HandlebarsParser implements Parser with raymond.
type HandlebarsParser struct {
	helpers *HelperRegistry
}

// NewParser creates a new HandlebarsParser. helpers may be nil.
func NewParser(helpers *HelperRegistry) Parser {
	return &HandlebarsParser{helpers: helpers}
}

// Parse renders file contents with helpers.
func (p *HandlebarsParser) Parse(ctx context.Context, input []byte, bindings Bindings) ([]byte, error) {
	logger := logging.GetLogger("parser")
	logger.Debug().Int("size", len(input)).Msg("Rendering content")
	return p.render(ctx, input, bindings, p.helpers)
}

// ParseFilename renders a path without helpers.
func (p *HandlebarsParser) ParseFilename(ctx context.Context, input []byte, bindings Bindings) ([]byte, error) {
	return p.render(ctx, input, bindings, nil)
}

// Validate checks template syntax without rendering.
func (p *HandlebarsParser) Validate(ctx context.Context, input []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := raymond.Parse(string(input)); err != nil {
		return newParseError(SyntaxError, "invalid template syntax", err)
	}
	return nil
}

func (p *HandlebarsParser) render(ctx context.Context, input []byte, bindings Bindings, helpers *HelperRegistry) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := raymond.Parse(string(input))
	if err != nil {
		return nil, newParseError(SyntaxError, "invalid template syntax", err)
	}
	helpers.registerOn(tpl)

	out, err := tpl.Exec(bindings.renderContext())
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, newParseError(RenderFailed, "template evaluation failed", err)
	}
	return []byte(out), nil
}
