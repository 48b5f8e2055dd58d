package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/execx"
	"github.com/stencil-dev/stencil-cli/internal/features"
	"github.com/stencil-dev/stencil-cli/internal/gitops"
	"github.com/stencil-dev/stencil-cli/internal/installer"
	"github.com/stencil-dev/stencil-cli/internal/manifest"
	"github.com/stencil-dev/stencil-cli/internal/pipeline"
	"github.com/stencil-dev/stencil-cli/internal/plan"
	"github.com/stencil-dev/stencil-cli/internal/pm"
	"github.com/stencil-dev/stencil-cli/internal/prompt"
	"github.com/stencil-dev/stencil-cli/internal/provenance"
	"github.com/stencil-dev/stencil-cli/internal/readme"
	"github.com/stencil-dev/stencil-cli/internal/runtime"
	"github.com/stencil-dev/stencil-cli/internal/scaffold"
	"github.com/stencil-dev/stencil-cli/internal/templates"
	"github.com/stencil-dev/stencil-cli/internal/ui"
	"github.com/stencil-dev/stencil-cli/internal/validation"
)

type Inputs struct {
	ProjectName    string `validate:"omitempty,project_name" cli:"name"`
	ProjectType    string `validate:"omitempty,oneof=vite nextjs" cli:"type"`
	PackageManager string `validate:"omitempty,oneof=npm pnpm" cli:"package-manager"`
	Language       string `validate:"omitempty,language_option" cli:"language"`
	Linting        bool
	Testing        bool
	CI             bool
	Security       bool
	GitHooks       bool
	GitInit        bool
	Deployment     string `validate:"omitempty,oneof=none vercel netlify render" cli:"deploy"`
	Yes            bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var createCmd = &cobra.Command{
		Use:     "create",
		Aliases: []string{"new"},
		Short:   "Create a new frontend project (recommended starting point)",
		Long: `Create a new frontend project from a feature selection.

This scaffolds the base project, applies the template bundles your selection
calls for, merges the package manifest, installs dependencies and generates
a README.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := newHandler(runtimeContext)

			inputs, err := handler.ResolveInputs(runtimeContext.Viper)
			if err != nil {
				return err
			}
			if err := handler.ValidateInputs(inputs); err != nil {
				return err
			}
			return handler.Execute(cmd.Context(), inputs)
		},
	}

	registerFlags(createCmd.Flags())

	return createCmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringP("name", "n", "", "Name for the new project (\".\" scaffolds into the current directory)")
	flags.StringP("type", "t", "", "Project type (vite or nextjs)")
	flags.String("package-manager", "", "Package manager (npm or pnpm)")
	flags.StringP("language", "l", "", "Language option (ts, js, ts-sw or js-sw)")
	flags.Bool("linting", false, "Add ESLint and Prettier")
	flags.Bool("testing", false, "Add Jest and Testing Library")
	flags.Bool("ci", false, "Add a GitHub Actions workflow")
	flags.Bool("security", false, "Add a security policy and Dependabot config")
	flags.Bool("git-hooks", false, "Add husky pre-commit hooks with lint-staged")
	flags.Bool("git-init", false, "Initialize a git repository and commit the result")
	flags.String("deploy", "", "Deployment target (none, vercel, netlify or render)")
	flags.BoolP("yes", "y", false, "Skip prompts and accept defaults for unset flags")
}

type handler struct {
	log       *zerolog.Logger
	stdin     io.Reader
	validated bool
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:       ctx.Logger,
		stdin:     ctx.Stdin,
		validated: false,
	}
}

func (h *handler) ResolveInputs(v *viper.Viper) (Inputs, error) {
	inputs := Inputs{
		ProjectName:    v.GetString("name"),
		ProjectType:    v.GetString("type"),
		PackageManager: v.GetString("package-manager"),
		Language:       v.GetString("language"),
		Linting:        v.GetBool("linting"),
		Testing:        v.GetBool("testing"),
		CI:             v.GetBool("ci"),
		Security:       v.GetBool("security"),
		GitHooks:       v.GetBool("git-hooks"),
		GitInit:        v.GetBool("git-init"),
		Deployment:     v.GetString("deploy"),
		Yes:            v.GetBool("yes"),
	}

	if inputs.Yes {
		applyDefaults(&inputs)
		return inputs, nil
	}

	if err := h.runWizard(&inputs); err != nil {
		return Inputs{}, err
	}
	return inputs, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validator.Struct(inputs); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	h.validated = true
	return nil
}

func (h *handler) Execute(ctx context.Context, inputs Inputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to get working directory: %w", err)
	}

	runner := execx.NewRunner(h.log)
	resolver := features.NewResolver(h.log, pm.Probe(runner))

	set, err := resolver.Resolve(ctx, features.RawSelection{
		ProjectName:    inputs.ProjectName,
		ProjectType:    inputs.ProjectType,
		PackageManager: inputs.PackageManager,
		LanguageOption: inputs.Language,
		Linting:        inputs.Linting,
		Testing:        inputs.Testing,
		CI:             inputs.CI,
		Security:       inputs.Security,
		GitHooks:       inputs.GitHooks,
		GitInit:        inputs.GitInit,
		Deployment:     inputs.Deployment,
		WorkingDir:     cwd,
	})
	if err != nil {
		return err
	}

	targetDir := cwd
	if !set.InPlace {
		targetDir = filepath.Join(cwd, set.ProjectName)
		if err := h.ensureTargetDirectory(targetDir); err != nil {
			return err
		}
	}

	ui.Title(fmt.Sprintf("Creating %s (%s, %s)", set.ProjectName, set.ProjectType, set.Language))

	registry := plan.NewRegistry(templates.BundleFS())
	bundlePlan := plan.Build(set, registry)

	if h.log.GetLevel() <= zerolog.DebugLevel {
		h.log.Debug().Msgf("Bundle plan:\n%s", renderPlan(bundlePlan))
	}

	spinner := ui.NewSpinner()
	run := &pipeline.Run{
		Log:       h.log,
		Features:  set,
		TargetDir: targetDir,
		Progress:  spinner,
		Plan:      bundlePlan,
	}

	executor := pipeline.NewExecutor(h.log, confirmAbort)
	err = executor.Execute(ctx, run, h.stages(cwd, runner))
	if errors.Is(err, pipeline.ErrAborted) {
		h.log.Warn().Msg("Run aborted; the target directory may be partially initialized")
		return nil
	}
	if err != nil {
		return err
	}

	h.printEpilogue(set, run)
	return nil
}

// stages is the fixed composition pipeline. Order is part of the contract:
// every stage assumes the filesystem state its predecessors left behind.
func (h *handler) stages(cwd string, runner execx.Runner) []pipeline.Stage {
	return []pipeline.Stage{
		{
			Name:   "scaffold",
			Policy: pipeline.Fatal,
			Run: func(ctx context.Context, r *pipeline.Run) error {
				r.Progress.Start("Creating base project")
				defer r.Progress.Stop()
				return scaffold.NewGenerator(r.Log, runner).Generate(ctx, cwd, r.Features)
			},
		},
		{
			Name:         "templates",
			Policy:       pipeline.Fatal,
			Precondition: pipeline.RequireFile(constants.ManifestFileName),
			Run: func(ctx context.Context, r *pipeline.Run) error {
				r.Progress.Start("Applying template bundles")
				defer r.Progress.Stop()
				return templates.NewCopier(r.Log).Apply(ctx, r.TargetDir, r.Plan, r.Features)
			},
		},
		{
			Name:         "manifest",
			Policy:       pipeline.Fatal,
			Precondition: pipeline.RequireFile(constants.ManifestFileName),
			Run: func(ctx context.Context, r *pipeline.Run) error {
				m, err := manifest.Load(r.TargetDir)
				if err != nil {
					return err
				}
				if err := manifest.MergeFeatures(m, r.Features); err != nil {
					return err
				}
				return m.Save(r.TargetDir)
			},
		},
		{
			Name:         "install",
			Policy:       pipeline.Fatal,
			Precondition: pipeline.RequireFile(constants.ManifestFileName),
			Run: func(ctx context.Context, r *pipeline.Run) error {
				r.Progress.Start("Installing dependencies")
				defer r.Progress.Stop()

				r.Batch = installer.ComputeBatch(r.Features)
				inst := installer.New(r.Log, runner, pm.New(r.Features.PackageManager), r.TargetDir)

				report, err := inst.Install(ctx, r.Batch)
				r.InstallReport = report
				if err != nil {
					return err
				}

				if r.Features.GitHooks {
					return inst.EnsureHookTooling(ctx, r.Batch)
				}
				return nil
			},
		},
		{
			Name:   "hooks",
			Policy: pipeline.Warn,
			Run: func(ctx context.Context, r *pipeline.Run) error {
				if !r.Features.GitHooks {
					return nil
				}
				if err := gitops.WriteHooks(r.TargetDir, pm.New(r.Features.PackageManager)); err != nil {
					return err
				}
				// The git-hooks stage owns the "prepare" key.
				m, err := manifest.Load(r.TargetDir)
				if err != nil {
					return err
				}
				m.SetScript("prepare", constants.HuskyPrepareSentinel)
				return m.Save(r.TargetDir)
			},
		},
		{
			Name:   "git",
			Policy: pipeline.Warn,
			Run: func(ctx context.Context, r *pipeline.Run) error {
				if !r.Features.GitInit {
					return nil
				}
				if err := gitops.EnsureGitignore(r.TargetDir); err != nil {
					return err
				}
				return gitops.New(r.Log, runner, r.TargetDir).InitAndCommit(ctx)
			},
		},
		{
			Name:   "provenance",
			Policy: pipeline.Warn,
			Run: func(ctx context.Context, r *pipeline.Run) error {
				return provenance.Write(r.TargetDir, provenance.NewRecord(r.Features, time.Now()))
			},
		},
		{
			Name:   "readme",
			Policy: pipeline.Warn,
			Run: func(ctx context.Context, r *pipeline.Run) error {
				return readme.Generate(r.Log, r.TargetDir, r.Features)
			},
		},
	}
}

func (h *handler) ensureTargetDirectory(dirPath string) error {
	if _, err := os.Stat(dirPath); err != nil {
		return nil
	}

	overwrite, err := prompt.YesNoPrompt(
		h.stdin,
		fmt.Sprintf("Directory %s already exists. Overwrite?", dirPath),
	)
	if err != nil {
		return err
	}
	if !overwrite {
		return fmt.Errorf("directory creation aborted by user")
	}
	if err := os.RemoveAll(dirPath); err != nil {
		return fmt.Errorf("failed to remove existing directory %s: %w", dirPath, err)
	}
	return nil
}

func confirmAbort() (bool, error) {
	return ui.Confirm(
		"Interrupt received. Abort the run?",
		ui.WithLabels("Abort", "Resume"),
		ui.WithDescription("Aborting leaves the target directory partially initialized."),
	)
}

func renderPlan(p plan.Plan) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Bundle"})
	for i, ref := range p.Bundles {
		t.AppendRow(table.Row{i + 1, ref.Path()})
	}
	return t.Render()
}

func (h *handler) printEpilogue(set features.FeatureSet, run *pipeline.Run) {
	ui.Line()
	ui.Success(fmt.Sprintf("Project %s is ready!", set.ProjectName))

	for _, spec := range run.InstallReport.Failed {
		ui.Warning(fmt.Sprintf("Could not install %s; add it manually", spec))
	}

	ui.Line()
	ui.Step("Next steps:")
	if !set.InPlace {
		ui.Command(fmt.Sprintf("   cd %s", set.ProjectName))
	}
	ui.Command(fmt.Sprintf("   %s run dev", set.PackageManager))
	ui.Line()
	ui.Dim(fmt.Sprintf("The full selection was recorded in %s", constants.ProvenanceFileName))
}

func applyDefaults(inputs *Inputs) {
	if inputs.ProjectName == "" {
		inputs.ProjectName = constants.DefaultProjectName
	}
	if inputs.ProjectType == "" {
		inputs.ProjectType = string(features.ProjectVite)
	}
	if inputs.PackageManager == "" {
		inputs.PackageManager = constants.DefaultPackageManager
	}
	if inputs.Language == "" {
		inputs.Language = "ts"
	}
	if inputs.Deployment == "" {
		inputs.Deployment = string(features.DeployNone)
	}
}
