package provider

import (
	"context"

	"github.com/tacogips/scaffold/internal/template/model"
)

// Provider abstracts the templates repository.
type Provider interface {
	// List returns the names of all templates, sorted.
	List(ctx context.Context) ([]string, error)

	// Fetch resolves a template by name and loads its descriptor.
	// Returns a ProviderError of type ProviderNotFound if the template doesn't exist.
	Fetch(ctx context.Context, name string) (*model.Template, error)

	// Name returns the provider name (e.g., "local").
	Name() string
}
