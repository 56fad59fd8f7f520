package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tacogips/scaffold/internal/config"
	"github.com/tacogips/scaffold/internal/logging"
	"github.com/tacogips/scaffold/internal/template/model"
	"github.com/tacogips/scaffold/internal/template/parser"
)

// ResolveVariables builds the bindings for one application.
//
// Descriptor variables are resolved in declaration order: a literal is used
// as-is, a spec uses its default or else asks the prompter once. Then
// project_name (the last segment of targetDir), full_name and license are
// added, overriding descriptor entries of the same name. Values are never
// escaped or coerced.
func ResolveVariables(ctx context.Context, desc model.Descriptor, identity config.IdentityConfig, targetDir string, prompter Prompter) (parser.Bindings, error) {
	logger := logging.GetLogger("variables")
	values := make(map[string]string, len(desc.Variables)+3)

	for _, v := range desc.Variables {
		switch {
		case v.Kind == model.VariableLiteral:
			values[v.Name] = v.Literal
		case v.HasDefault:
			values[v.Name] = v.Default
		default:
			if prompter == nil {
				return parser.Bindings{}, NewPromptError(fmt.Sprintf("no prompter available for variable %q", v.Name), nil)
			}
			answer, err := prompter.Prompt(ctx, PromptRequest{Name: v.Name, Label: v.Label(), Type: v.Type})
			if err != nil {
				return parser.Bindings{}, NewPromptError(fmt.Sprintf("failed to read value for %q", v.Name), err)
			}
			values[v.Name] = answer
		}
		logger.Debug().Str("variable", v.Name).Str("kind", v.Kind.String()).Msg("Resolved variable")
	}

	projectName, err := ProjectName(targetDir)
	if err != nil {
		return parser.Bindings{}, NewValidationError("cannot derive project name", err)
	}
	values[model.VarProjectName] = projectName
	values[model.VarFullName] = identity.FullName
	values[model.VarLicense] = identity.License

	return parser.NewBindings(values), nil
}

// ProjectName returns the final path segment of the absolute target directory.
func ProjectName(targetDir string) (string, error) {
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return "", err
	}
	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." {
		return "", fmt.Errorf("%s has no final path segment", targetDir)
	}
	return name, nil
}
