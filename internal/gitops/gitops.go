package gitops

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/execx"
)

const initialCommitMessage = "Initial commit from stencil"

var defaultGitignore = `node_modules/
dist/
build/
.next/
coverage/
.env
.env.local
*.log
.DS_Store
`

// Git wraps the version-control binary. Every failure here is a warning by
// pipeline policy; a project without history is still a valid project.
type Git struct {
	log    *zerolog.Logger
	runner execx.Runner
	dir    string
}

func New(log *zerolog.Logger, runner execx.Runner, dir string) *Git {
	return &Git{log: log, runner: runner, dir: dir}
}

// InitAndCommit initializes a repository and records the scaffolded tree.
func (g *Git) InitAndCommit(ctx context.Context) error {
	if err := g.runner.Run(ctx, g.dir, "git", "init"); err != nil {
		return err
	}
	if err := g.runner.Run(ctx, g.dir, "git", "add", "-A"); err != nil {
		return err
	}
	return g.runner.Run(ctx, g.dir, "git", "commit", "-m", initialCommitMessage)
}

// EnsureGitignore writes a default .gitignore when the scaffold generator
// did not leave one.
func EnsureGitignore(dir string) error {
	path := filepath.Join(dir, constants.GitignoreFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(defaultGitignore), 0o644)
}
