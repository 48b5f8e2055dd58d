package scaffold

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/execx"
	"github.com/stencil-dev/stencil-cli/internal/features"
)

// Generator invokes the external scaffold generator (create-vite or
// create-next-app) that produces the base project. The composition engine
// only requires that a valid package manifest and source tree exist
// afterwards; a generator failure is fatal because there is nothing to
// compose onto.
type Generator struct {
	log    *zerolog.Logger
	runner execx.Runner
}

func NewGenerator(log *zerolog.Logger, runner execx.Runner) *Generator {
	return &Generator{log: log, runner: runner}
}

// Generate runs the generator for the project type in parentDir. The
// in-place sentinel is passed through: both generators accept "." as the
// target.
func (g *Generator) Generate(ctx context.Context, parentDir string, f features.FeatureSet) error {
	target := f.ProjectName
	if f.InPlace {
		target = constants.InPlaceSentinel
	}

	name, args := generatorCommand(f, target)

	g.log.Info().Msgf("Scaffolding %s project with %s", f.ProjectType, name)
	if err := g.runner.Run(ctx, parentDir, name, args...); err != nil {
		return fmt.Errorf("scaffold generator failed for %s: %w", f.ProjectType, err)
	}
	return nil
}

func generatorCommand(f features.FeatureSet, target string) (string, []string) {
	switch f.ProjectType {
	case features.ProjectNext:
		args := []string{"--yes", "create-next-app@latest", target,
			"--app", "--no-tailwind", "--no-eslint", "--skip-install", "--disable-git"}
		if f.UseTypeScript() {
			args = append(args, "--ts")
		} else {
			args = append(args, "--js")
		}
		if f.PackageManager == features.Pnpm {
			return "pnpm", append([]string{"dlx"}, args[1:]...)
		}
		return "npx", args

	default: // Vite
		template := "react"
		if f.UseTypeScript() {
			template = "react-ts"
		}
		if f.PackageManager == features.Pnpm {
			return "pnpm", []string{"create", "vite", target, "--template", template}
		}
		return "npm", []string{"create", "vite@latest", target, "--", "--template", template}
	}
}
