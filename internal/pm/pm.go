package pm

import (
	"context"

	"github.com/stencil-dev/stencil-cli/internal/execx"
	"github.com/stencil-dev/stencil-cli/internal/features"
)

// Manager maps a resolved package manager onto the concrete invocations the
// installer needs: a bulk install command, a single-specifier add command and
// a version probe. All install invocations carry offline-preference, no-audit
// and quiet flags so runs stay fast and terse.
type Manager struct {
	Name features.PackageManager
}

func New(name features.PackageManager) Manager {
	return Manager{Name: name}
}

// Binary is the executable to invoke.
func (m Manager) Binary() string {
	return string(m.Name)
}

// ProbeArgs returns the version command used to check availability.
func (m Manager) ProbeArgs() []string {
	return []string{"--version"}
}

// InstallArgs installs whatever the manifest already declares.
func (m Manager) InstallArgs() []string {
	switch m.Name {
	case features.Pnpm:
		return []string{"install", "--prefer-offline", "--silent"}
	default:
		return []string{"install", "--prefer-offline", "--no-audit", "--silent"}
	}
}

// BulkAddArgs returns the batched install invocation for the given specifiers.
func (m Manager) BulkAddArgs(dev bool, specs []string) []string {
	var args []string
	switch m.Name {
	case features.Pnpm:
		args = []string{"add", "--prefer-offline", "--silent"}
	default:
		args = []string{"install", "--prefer-offline", "--no-audit", "--silent"}
	}
	if dev {
		args = append(args, "--save-dev")
	}
	return append(args, specs...)
}

// AddArgs returns the single-specifier install invocation.
func (m Manager) AddArgs(dev bool, spec string) []string {
	return m.BulkAddArgs(dev, []string{spec})
}

// HookCommand is the lint-staged invocation written into .husky/pre-commit.
func (m Manager) HookCommand() string {
	switch m.Name {
	case features.Pnpm:
		return "pnpm exec lint-staged"
	default:
		return "npx lint-staged"
	}
}

// Probe returns a features.ProbeFunc backed by the real binaries.
func Probe(runner execx.Runner) features.ProbeFunc {
	return func(ctx context.Context, pm features.PackageManager) error {
		return runner.Run(ctx, "", New(pm).Binary(), New(pm).ProbeArgs()...)
	}
}
