package gitops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/pm"
)

// WriteHooks creates the .husky directory and a pre-commit hook that runs
// lint-staged through the resolved package manager. The hook file must be
// executable or git silently ignores it.
func WriteHooks(dir string, mgr pm.Manager) error {
	huskyDir := filepath.Join(dir, constants.HuskyDirName)
	if err := os.MkdirAll(huskyDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", constants.HuskyDirName, err)
	}

	hook := "#!/usr/bin/env sh\n" + mgr.HookCommand() + "\n"
	hookPath := filepath.Join(huskyDir, constants.PreCommitHookName)

	// #nosec G306 -- git hooks must be executable
	if err := os.WriteFile(hookPath, []byte(hook), 0o755); err != nil {
		return fmt.Errorf("failed to write pre-commit hook: %w", err)
	}
	return nil
}
