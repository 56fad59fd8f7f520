package app

import (
	"context"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/template/provider"
)

// ListTemplates returns the sorted template names of the configured repository.
func ListTemplates(ctx context.Context, cfg *config.Config) ([]string, error) {
	if cfg == nil {
		return nil, NewValidationError("configuration is required", nil)
	}
	names, err := provider.NewLocalProvider(cfg.TemplatesDir).List(ctx)
	if err != nil {
		return nil, wrapProviderError(err, "failed to list templates")
	}
	return names, nil
}
