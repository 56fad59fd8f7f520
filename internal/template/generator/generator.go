package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
	"github.com/tacogips/scaffold/internal/template/parser"
)

// Generator materializes templates into an output directory.
type Generator interface {
	// Generate renders every template file and writes it below the output
	// directory. The first fatal error stops generation; files already
	// written are left in place.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// DryRun renders every template file without writing anything.
	DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// Template is the template to generate from.
	Template *model.Template

	// Bindings holds the values substituted into paths and contents.
	Bindings parser.Bindings

	// OutputDir is the directory where files will be generated.
	OutputDir string

	// Reporter is called once per file written (or that would be written).
	Reporter Reporter
}

// DryRunFile contains information about a file that would be created in dry-run mode.
type DryRunFile struct {
	// Path is the output file path.
	Path string
	// Content is the rendered file content.
	Content []byte
	// Exists indicates if the file already exists.
	Exists bool
}

// GenerateResult contains generation statistics.
type GenerateResult struct {
	// FilesCreated is the number of new files created.
	FilesCreated int

	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int

	// FilesSkipped is the number of template entries skipped because they
	// could not be read.
	FilesSkipped int

	// Errors contains the non-fatal walk errors encountered during generation.
	Errors []error

	// Files contains the destination paths of all files processed, in walk order.
	Files []string

	// DryRunFiles contains detailed information for dry-run mode (only populated in dry-run).
	DryRunFiles []DryRunFile

	// Directories contains directories that would be created (only populated in dry-run).
	Directories []string
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	parser parser.Parser
}

// NewGenerator creates a new DefaultGenerator. If p is nil, a parser with the
// template repository's helpers is created for each generation.
func NewGenerator(p parser.Parser) Generator {
	return &DefaultGenerator{parser: p}
}

// Generate renders and writes a template.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, false)
}

// DryRun renders a template without writing files.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, true)
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("generator")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	logger.Debug().
		Str("template", opts.Template.Name).
		Str("source", opts.Template.RootPath).
		Str("output", opts.OutputDir).
		Bool("dry_run", dryRun).
		Msg("Starting generation")

	p := g.parser
	if p == nil {
		p = parser.NewParser(parser.NewHelperRegistry(opts.Template.RepositoryRoot))
	}
	processor := NewFileProcessor(p, nil)
	writer := NewFileWriter(opts.OutputDir)

	result := &GenerateResult{
		Errors: []error{},
		Files:  []string{},
	}

	if dryRun {
		if err := checkSyntax(ctx, opts.Template.RootPath, p, processor); err != nil {
			return result, err
		}
	}
	dirsToCreate := make(map[string]bool)

	for entry, walkErr := range Walk(opts.Template.RootPath) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if walkErr != nil {
			if IsFatal(walkErr) {
				return result, walkErr
			}
			logger.Warn().Err(walkErr).Msg("Skipping unreadable template entry")
			result.Errors = append(result.Errors, walkErr)
			result.FilesSkipped++
			continue
		}

		relPath, err := ProcessFilename(ctx, entry.Path, opts.Bindings, p)
		if err != nil {
			return result, err
		}

		content, err := processor.Process(ctx, entry, opts.Bindings)
		if err != nil {
			return result, err
		}

		out := model.RenderedOutput{Path: relPath, Content: content, Mode: entry.Mode}

		var dest string
		var exists bool
		if dryRun {
			dest, err = writer.Resolve(out.Path)
			if err != nil {
				return result, err
			}
			exists = writer.Exists(dest)
			for dir := filepath.Dir(dest); dir != writer.Root() && dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
				if !writer.Exists(dir) {
					dirsToCreate[dir] = true
				}
			}
			result.DryRunFiles = append(result.DryRunFiles, DryRunFile{
				Path:    dest,
				Content: content,
				Exists:  exists,
			})
		} else {
			if resolved, err := writer.Resolve(out.Path); err == nil {
				exists = writer.Exists(resolved)
			}
			dest, err = writer.Write(out)
			if err != nil {
				return result, err
			}
		}

		if opts.Reporter != nil {
			opts.Reporter(out, dest)
		}
		result.Files = append(result.Files, dest)
		if exists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
	}

	if dryRun {
		for dir := range dirsToCreate {
			result.Directories = append(result.Directories, dir)
		}
		sort.Strings(result.Directories)
	}

	logger.Debug().
		Int("created", result.FilesCreated).
		Int("overwritten", result.FilesOverwritten).
		Int("skipped", result.FilesSkipped).
		Msg("Generation complete")

	return result, nil
}

// checkSyntax parses every path and text file of the template without
// rendering, so a dry run reports a syntax error anywhere in the template
// before planning any file. Unreadable entries are left to the main loop.
func checkSyntax(ctx context.Context, root string, p parser.Parser, processor Processor) error {
	for entry, walkErr := range Walk(root) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			continue
		}
		if err := p.Validate(ctx, []byte(entry.Path)); err != nil {
			return newGeneratorError(GeneratorPathRenderFailed, "invalid path template", entry.Path, err)
		}
		if !processor.ShouldProcess(entry) {
			continue
		}
		if err := p.Validate(ctx, entry.Content); err != nil {
			return newGeneratorError(GeneratorProcessFailed, "invalid template syntax", entry.Path, err)
		}
	}
	return nil
}

// validateOptions validates GenerateOptions.
func validateOptions(opts GenerateOptions) error {
	if opts.Template == nil {
		return fmt.Errorf("template cannot be nil")
	}
	if opts.Template.RootPath == "" {
		return fmt.Errorf("template root cannot be empty")
	}
	if opts.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return nil
}
