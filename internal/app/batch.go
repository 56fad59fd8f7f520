package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/generator"
	"github.com/tacogips/scaffold/internal/template/provider"
)

// ApplyAllOptions contains options for applying every template.
type ApplyAllOptions struct {
	// OutputDir overrides Config.Batch.OutputDir.
	OutputDir string
	Config    *config.Config
	Prompter  Prompter
	// Reporter is called once per written file.
	Reporter generator.Reporter
	// OnTemplate is called after each template is applied.
	OnTemplate func(src, dst string)
}

// ApplyAllResult maps each applied template to its destination.
type ApplyAllResult struct {
	Templates    []string
	Destinations []string
	Files        int
}

// ApplyAll applies every template into <output>/<name>. Destinations are
// created when missing and overwritten without confirmation. The first
// failure aborts the batch.
func ApplyAll(ctx context.Context, opts ApplyAllOptions) (*ApplyAllResult, error) {
	logger := logging.GetLogger("batch")

	if opts.Config == nil {
		return nil, NewValidationError("configuration is required", nil)
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = opts.Config.Batch.OutputDir
	}
	if strings.TrimSpace(outputDir) == "" {
		return nil, NewValidationError("output directory is required: pass --output or set batch.output_dir", nil)
	}
	outputDir, err := config.ExpandPath(outputDir)
	if err != nil {
		return nil, NewValidationError("invalid output directory", err)
	}

	prov := provider.NewLocalProvider(opts.Config.TemplatesDir)
	names, err := prov.List(ctx)
	if err != nil {
		return nil, wrapProviderError(err, "failed to list templates")
	}

	result := &ApplyAllResult{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		dst := filepath.Join(outputDir, name)
		if err := os.MkdirAll(dst, 0755); err != nil {
			return result, NewAppError(GenerationFailed, fmt.Sprintf("failed to create %s", dst), err)
		}

		applied, err := Apply(ctx, ApplyOptions{
			TargetDir:    dst,
			TemplateName: name,
			Force:        true,
			Config:       opts.Config,
			Provider:     prov,
			Prompter:     opts.Prompter,
			Reporter:     opts.Reporter,
		})
		if err != nil {
			return result, err
		}

		src := filepath.Join(prov.TemplatesDir(), name)
		logger.Debug().Str("src", src).Str("dst", dst).Int("files", len(applied.Files)).Msg("Template applied")
		result.Templates = append(result.Templates, name)
		result.Destinations = append(result.Destinations, dst)
		result.Files += len(applied.Files)
		if opts.OnTemplate != nil {
			opts.OnTemplate(src, dst)
		}
	}
	return result, nil
}
