package execx

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog"
)

// Runner executes external binaries (package manager, git, scaffold
// generators). It exists as an interface so stage logic can be tested
// without spawning processes.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

type commandRunner struct {
	log *zerolog.Logger
}

func NewRunner(log *zerolog.Logger) Runner {
	return &commandRunner{log: log}
}

func (r *commandRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	r.log.Debug().Msgf("Running command: %s %v in directory: %s", name, args, dir)

	// #nosec G204 -- command names and args are internal and validated
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		r.log.Debug().Err(err).Msgf("Command failed: %s %v\nOutput:\n%s", name, args, output)
		return err
	}

	r.log.Debug().Msgf("Command succeeded: %s %v", name, args)
	return nil
}

func (r *commandRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	r.log.Debug().Msgf("Running command: %s %v in directory: %s", name, args, dir)

	// #nosec G204 -- command names and args are internal and validated
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		r.log.Debug().Err(err).Msgf("Command failed: %s %v\nOutput:\n%s", name, args, output)
		return output, err
	}

	r.log.Debug().Msgf("Command succeeded: %s %v", name, args)
	return output, nil
}
