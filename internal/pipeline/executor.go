package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ConfirmAbortFunc asks the user whether a received interrupt should abort
// the run. Injectable for tests.
type ConfirmAbortFunc func() (bool, error)

// Executor runs a fixed ordered list of named stages. Stage order is the
// contract: later stages assume the filesystem state earlier ones left
// behind, so there is no reordering and no rollback.
type Executor struct {
	log          *zerolog.Logger
	confirmAbort ConfirmAbortFunc
}

func NewExecutor(log *zerolog.Logger, confirmAbort ConfirmAbortFunc) *Executor {
	return &Executor{log: log, confirmAbort: confirmAbort}
}

// Execute runs the stages in order against the run context. A SIGINT pauses
// the progress reporter and asks for confirmation: a confirmed interrupt
// cancels the run with ErrAborted, a declined one resumes the active stage.
func (e *Executor) Execute(ctx context.Context, run *Run, stages []Stage) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var aborted atomic.Bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				run.Progress.Pause()
				confirmed, err := e.confirmAbort()
				if err != nil || confirmed {
					aborted.Store(true)
					cancel()
					return
				}
				run.Progress.Resume()
			}
		}
	}()

	defer run.Progress.Stop()

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			if aborted.Load() {
				return ErrAborted
			}
			return err
		}

		if stage.Precondition != nil {
			if err := stage.Precondition(run); err != nil {
				if failErr := e.handleFailure(stage, err); failErr != nil {
					return failErr
				}
				continue
			}
		}

		e.log.Debug().Str("stage", stage.Name).Msg("Running stage")
		if err := stage.Run(ctx, run); err != nil {
			if aborted.Load() {
				return ErrAborted
			}
			if failErr := e.handleFailure(stage, err); failErr != nil {
				return failErr
			}
		}
	}

	if aborted.Load() {
		return ErrAborted
	}
	return nil
}

func (e *Executor) handleFailure(stage Stage, err error) error {
	if stage.Policy == Warn {
		e.log.Warn().Err(err).Msgf("Stage %s failed, continuing", stage.Name)
		return nil
	}
	return fmt.Errorf("stage %s failed: %w", stage.Name, err)
}
