package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/generator"
	"github.com/tacogips/scaffold/internal/template/model"
	"github.com/tacogips/scaffold/internal/template/parser"
	"github.com/tacogips/scaffold/internal/template/provider"
)

// ApplyOptions contains options for applying a template to a directory.
type ApplyOptions struct {
	// TargetDir is the existing directory to write into.
	TargetDir string
	// TemplateName selects a template under templates/. Empty asks the Selector.
	TemplateName string
	// Force skips the non-empty target confirmation.
	Force bool
	// Watch is accepted for compatibility and has no effect.
	Watch bool
	// DryRun renders every file without writing anything.
	DryRun bool
	// Config is the loaded global configuration.
	Config *config.Config
	// Provider resolves templates. Defaults to a LocalProvider on Config.TemplatesDir.
	Provider provider.Provider
	// Generator defaults to generator.NewGenerator(nil).
	Generator generator.Generator
	Prompter  Prompter
	Confirmer Confirmer
	Selector  Selector
	// Reporter is called once per written file.
	Reporter generator.Reporter
}

// ApplyResult contains the outcome of an application.
type ApplyResult struct {
	// Template is the applied template.
	Template *model.Template
	// Bindings are the resolved variable values.
	Bindings parser.Bindings
	// Files are the destination paths, in walk order.
	Files []string
	// Skipped counts unreadable template entries.
	Skipped int
	// Errors holds the non-fatal walk errors.
	Errors []error
	// DryRunFiles is only populated in dry-run mode.
	DryRunFiles []generator.DryRunFile
	// Directories that a dry run would create.
	Directories []string
}

// Apply materializes one template into an existing target directory.
//
// The steps run in order and stop at the first failure: validate the target,
// resolve the template, resolve variables, guard the target, generate.
func Apply(ctx context.Context, opts ApplyOptions) (*ApplyResult, error) {
	logger := logging.GetLogger("apply")
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	if opts.Config == nil {
		return nil, NewValidationError("configuration is required", nil)
	}
	if opts.Watch {
		logger.Debug().Msg("Watch mode is not supported, ignoring")
	}

	targetDir, err := validateTarget(opts.TargetDir)
	if err != nil {
		return nil, err
	}

	prov := opts.Provider
	if prov == nil {
		prov = provider.NewLocalProvider(opts.Config.TemplatesDir)
	}

	tmpl, err := resolveTemplate(ctx, prov, opts.TemplateName, opts.Selector)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("template", tmpl.Name).Str("target", targetDir).Msg("Template resolved")

	bindings, err := ResolveVariables(ctx, tmpl.Descriptor, opts.Config.Identity, targetDir, opts.Prompter)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := GuardTarget(ctx, targetDir, opts.Force, opts.Confirmer); err != nil {
			return nil, err
		}
	}

	gen := opts.Generator
	if gen == nil {
		gen = generator.NewGenerator(nil)
	}
	genOpts := generator.GenerateOptions{
		Template:  tmpl,
		Bindings:  bindings,
		OutputDir: targetDir,
		Reporter:  opts.Reporter,
	}

	var genResult *generator.GenerateResult
	if opts.DryRun {
		genResult, err = gen.DryRun(ctx, genOpts)
	} else {
		genResult, err = gen.Generate(ctx, genOpts)
	}

	result := &ApplyResult{Template: tmpl, Bindings: bindings}
	if genResult != nil {
		result.Files = genResult.Files
		result.Skipped = genResult.FilesSkipped
		result.Errors = genResult.Errors
		result.DryRunFiles = genResult.DryRunFiles
		result.Directories = genResult.Directories
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return result, err
		}
		return result, NewAppError(GenerationFailed, fmt.Sprintf("failed to apply template %s", tmpl.Name), err)
	}
	return result, nil
}

func validateTarget(dir string) (string, error) {
	if dir == "" {
		return "", NewValidationError("target directory is required", nil)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("invalid target directory %s", dir), err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", NewAppError(TargetMissing, fmt.Sprintf("target directory does not exist: %s", dir), err)
	}
	if !info.IsDir() {
		return "", NewAppError(TargetMissing, fmt.Sprintf("target is not a directory: %s", dir), nil)
	}
	return abs, nil
}

func resolveTemplate(ctx context.Context, prov provider.Provider, name string, selector Selector) (*model.Template, error) {
	if name == "" {
		names, err := prov.List(ctx)
		if err != nil {
			return nil, wrapProviderError(err, "failed to list templates")
		}
		if len(names) == 0 {
			return nil, NewAppError(TemplateMissing, "no templates found", nil)
		}
		if selector == nil {
			return nil, NewPromptError("no template name given and no selector available", nil)
		}
		name, err = selector.Select(ctx, "Select a template", names)
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				return nil, NewAppError(SelectionCancelled, "template selection cancelled", err)
			}
			return nil, NewPromptError("failed to select template", err)
		}
	}

	tmpl, err := prov.Fetch(ctx, name)
	if err != nil {
		return nil, wrapProviderError(err, fmt.Sprintf("failed to load template %s", name))
	}
	return tmpl, nil
}

func wrapProviderError(err error, message string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var descErr *provider.DescriptorError
	if errors.As(err, &descErr) {
		return NewAppError(DescriptorInvalid, message, err)
	}

	var provErr *provider.ProviderError
	if errors.As(err, &provErr) {
		switch provErr.Type {
		case provider.ProviderNotFound, provider.ProviderInvalidName:
			return NewAppError(TemplateMissing, message, err)
		}
	}
	return NewAppError(TemplateFetchFailed, message, err)
}
