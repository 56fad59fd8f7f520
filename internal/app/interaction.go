package app

import (
	"context"
	"errors"

	"github.com/tacogips/scaffold/internal/template/model"
)

// ErrCancelled is returned by interactive capabilities when the user aborts.
var ErrCancelled = errors.New("cancelled by user")

// PromptRequest describes a value to ask the user for.
type PromptRequest struct {
	// Name is the variable name.
	Name string
	// Label is the text shown to the user.
	Label string
	// Type is the advisory variable type, empty when undeclared.
	Type model.VarType
}

// Prompter asks the user for a free-form value.
type Prompter interface {
	Prompt(ctx context.Context, req PromptRequest) (string, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Selector asks the user to pick one of the candidates. Implementations
// return ErrCancelled when the user backs out.
type Selector interface {
	Select(ctx context.Context, message string, candidates []string) (string, error)
}
