package installer

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/execx"
	"github.com/stencil-dev/stencil-cli/internal/pm"
)

const individualAttempts = 2

// Installer drives the three sequential install stages: whatever the
// manifest already declares, the batched devDependencies, then the batched
// dependencies. A failing batch falls back to per-specifier installs; a
// specifier that still fails becomes a warning and is excluded, never a
// stage failure.
type Installer struct {
	log    *zerolog.Logger
	runner execx.Runner
	mgr    pm.Manager
	dir    string
}

// Report lists the specifiers that could not be installed.
type Report struct {
	Failed []string
}

func New(log *zerolog.Logger, runner execx.Runner, mgr pm.Manager, dir string) *Installer {
	return &Installer{log: log, runner: runner, mgr: mgr, dir: dir}
}

// Install runs all three stages in order. The only error it returns is
// context cancellation; install failures are downgraded per policy.
func (i *Installer) Install(ctx context.Context, batch Batch) (Report, error) {
	var report Report

	if err := i.runner.Run(ctx, i.dir, i.mgr.Binary(), i.mgr.InstallArgs()...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}
		i.log.Warn().Err(err).Msg("Installing declared dependencies failed, continuing")
	}

	failed, err := i.installBatch(ctx, true, batch.DevDependencies)
	report.Failed = append(report.Failed, failed...)
	if err != nil {
		return report, err
	}

	failed, err = i.installBatch(ctx, false, batch.Dependencies)
	report.Failed = append(report.Failed, failed...)
	if err != nil {
		return report, err
	}

	return report, nil
}

// installBatch attempts one bulk install, then falls back to installing
// every specifier individually when the bulk invocation fails.
func (i *Installer) installBatch(ctx context.Context, dev bool, specs []string) ([]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	if err := i.runner.Run(ctx, i.dir, i.mgr.Binary(), i.mgr.BulkAddArgs(dev, specs)...); err == nil {
		return nil, nil
	} else if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	} else {
		i.log.Warn().Err(err).Msg("Batched install failed, retrying each dependency individually")
	}

	var failed []string
	for _, spec := range specs {
		if err := i.installOne(ctx, dev, spec); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return failed, ctxErr
			}
			i.log.Warn().Err(err).Msgf("Could not install %s, skipping", spec)
			failed = append(failed, spec)
		}
	}
	return failed, nil
}

func (i *Installer) installOne(ctx context.Context, dev bool, spec string) error {
	return retry.Do(
		func() error {
			return i.runner.Run(ctx, i.dir, i.mgr.Binary(), i.mgr.AddArgs(dev, spec)...)
		},
		retry.Context(ctx),
		retry.Attempts(individualAttempts),
		retry.LastErrorOnly(true),
	)
}

// EnsureHookTooling force-installs husky and lint-staged individually when
// the dev batch did not carry them. Batches from ComputeBatch always include
// both when git hooks are selected, so for the standard pipeline this is a
// no-op; it only fires for callers assembling custom batches. Hook files are
// only useful with the tooling present.
func (i *Installer) EnsureHookTooling(ctx context.Context, batch Batch) error {
	if batch.HasDevDependency("husky") && batch.HasDevDependency("lint-staged") {
		return nil
	}

	for _, spec := range []string{"husky", "lint-staged"} {
		if batch.HasDevDependency(spec) {
			continue
		}
		if err := i.installOne(ctx, true, spec); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			i.log.Warn().Err(err).Msgf("Could not install %s, git hooks may not run", spec)
		}
	}
	return nil
}
