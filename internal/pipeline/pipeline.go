package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/features"
	"github.com/stencil-dev/stencil-cli/internal/installer"
	"github.com/stencil-dev/stencil-cli/internal/plan"
)

// ErrAborted is returned when the user confirms an interrupt. It terminates
// the run cleanly: no further stages, no rollback.
var ErrAborted = errors.New("run aborted by user")

// Policy is the failure policy of a stage.
type Policy int

const (
	// Fatal stops the run and makes the process exit non-zero.
	Fatal Policy = iota
	// Warn logs the failure and continues with the next stage.
	Warn
)

// Progress is the pausable progress-reporter capability carried by a run.
// The interrupt handler pauses it before prompting and resumes afterwards.
type Progress interface {
	Start(message string)
	Update(message string)
	Stop()
	Pause()
	Resume()
}

// NopProgress is a Progress that does nothing, for tests and quiet runs.
type NopProgress struct{}

func (NopProgress) Start(string)  {}
func (NopProgress) Update(string) {}
func (NopProgress) Stop()         {}
func (NopProgress) Pause()        {}
func (NopProgress) Resume()       {}

// Run is the per-run context object threaded through every stage: the
// resolved FeatureSet, the exclusively-owned target directory, the progress
// reporter, and the artifacts stages hand to their successors.
type Run struct {
	Log       *zerolog.Logger
	Features  features.FeatureSet
	TargetDir string
	Progress  Progress

	// Artifacts produced by earlier stages for later ones.
	Plan          plan.Plan
	Batch         installer.Batch
	InstallReport installer.Report
}

// Stage is one sequential phase of the composition pipeline. Each stage
// fully completes, including its I/O, before the next begins.
type Stage struct {
	Name         string
	Policy       Policy
	Precondition func(*Run) error
	Run          func(ctx context.Context, r *Run) error
}

// RequireFile is a stage precondition asserting that an earlier stage left
// the given file in the target directory.
func RequireFile(rel string) func(*Run) error {
	return func(r *Run) error {
		if _, err := os.Stat(filepath.Join(r.TargetDir, rel)); err != nil {
			return fmt.Errorf("required file %s missing: %w", rel, err)
		}
		return nil
	}
}
