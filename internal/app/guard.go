package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tacogips/scaffold/internal/logging"
)

// GuardTarget asks for confirmation before writing into a non-empty target.
// With force set, no check is made.
func GuardTarget(ctx context.Context, targetDir string, force bool, confirmer Confirmer) error {
	if force {
		return nil
	}

	empty, err := isEmptyDir(targetDir)
	if err != nil {
		return NewAppError(TargetMissing, fmt.Sprintf("cannot read target directory %s", targetDir), err)
	}
	if empty {
		return nil
	}

	logger := logging.GetLogger("guard")
	logger.Debug().Str("target", targetDir).Msg("Target directory is not empty")
	if confirmer == nil {
		return NewPromptError("target directory is not empty and no confirmer is available", nil)
	}

	ok, err := confirmer.Confirm(ctx, fmt.Sprintf("Target directory %s is not empty. Continue and overwrite files?", targetDir))
	if err != nil {
		return NewPromptError("failed to confirm overwrite", err)
	}
	if !ok {
		return NewAppError(OverwriteDeclined, fmt.Sprintf("target directory is not empty: %s", targetDir), nil)
	}
	return nil
}

func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}
