package features

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/validation"
)

// RawSelection is the unprocessed choice set handed over by the prompt
// collector or by CLI flags. The Resolver is the only consumer.
type RawSelection struct {
	ProjectName    string
	ProjectType    string
	PackageManager string
	LanguageOption string // combined language option: ts, js, ts-sw, js-sw
	Linting        bool
	Testing        bool
	CI             bool
	Security       bool
	GitHooks       bool
	GitInit        bool
	Deployment     string
	WorkingDir     string // used to derive the project name for in-place runs
}

// ProbeFunc checks that a package manager binary responds to its version
// command. Injectable for tests.
type ProbeFunc func(ctx context.Context, pm PackageManager) error

// Resolver normalizes a RawSelection into a canonical FeatureSet.
type Resolver struct {
	log   *zerolog.Logger
	probe ProbeFunc
}

func NewResolver(log *zerolog.Logger, probe ProbeFunc) *Resolver {
	return &Resolver{log: log, probe: probe}
}

// Resolve validates the raw selection, canonicalizes the combined language
// option and resolves the requested package manager to one that is actually
// installed. A missing binary downgrades to npm with a warning; it is never
// an error.
func (r *Resolver) Resolve(ctx context.Context, raw RawSelection) (FeatureSet, error) {
	if err := validation.IsValidProjectName(raw.ProjectName); err != nil {
		return FeatureSet{}, err
	}

	inPlace := raw.ProjectName == constants.InPlaceSentinel
	projectName := raw.ProjectName
	if inPlace {
		projectName = filepath.Base(raw.WorkingDir)
	}

	projectType, err := parseProjectType(raw.ProjectType)
	if err != nil {
		return FeatureSet{}, err
	}

	language, serviceWorker, err := parseLanguageOption(raw.LanguageOption)
	if err != nil {
		return FeatureSet{}, err
	}

	deployment, err := parseDeployment(raw.Deployment)
	if err != nil {
		return FeatureSet{}, err
	}

	manager, err := r.resolvePackageManager(ctx, raw.PackageManager)
	if err != nil {
		return FeatureSet{}, err
	}

	return FeatureSet{
		ProjectName:    projectName,
		ProjectType:    projectType,
		PackageManager: manager,
		Language:       language,
		ServiceWorker:  serviceWorker,
		Linting:        raw.Linting,
		Testing:        raw.Testing,
		CI:             raw.CI,
		Security:       raw.Security,
		GitHooks:       raw.GitHooks,
		GitInit:        raw.GitInit,
		Deployment:     deployment,
		InPlace:        inPlace,
	}, nil
}

func (r *Resolver) resolvePackageManager(ctx context.Context, requested string) (PackageManager, error) {
	manager, err := parsePackageManager(requested)
	if err != nil {
		return "", err
	}

	if err := r.probe(ctx, manager); err != nil {
		if manager == Npm {
			return "", fmt.Errorf("npm is not available: %w", err)
		}
		r.log.Warn().Msgf("%s is not available, falling back to %s", manager, constants.DefaultPackageManager)
		return Npm, nil
	}

	return manager, nil
}

// parseLanguageOption splits the combined language option into the language
// and service-worker bits the rest of the pipeline works with.
func parseLanguageOption(option string) (Language, bool, error) {
	base, serviceWorker := option, false
	if trimmed, ok := strings.CutSuffix(option, "-sw"); ok {
		base, serviceWorker = trimmed, true
	}

	switch base {
	case "ts":
		return TypeScript, serviceWorker, nil
	case "js":
		return JavaScript, serviceWorker, nil
	default:
		return "", false, fmt.Errorf("unknown language option %q", option)
	}
}

func parseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectVite, ProjectNext:
		return ProjectType(s), nil
	default:
		return "", fmt.Errorf("unknown project type %q", s)
	}
}

func parsePackageManager(s string) (PackageManager, error) {
	if s == "" {
		return Npm, nil
	}
	switch PackageManager(s) {
	case Npm, Pnpm:
		return PackageManager(s), nil
	default:
		return "", fmt.Errorf("unknown package manager %q", s)
	}
}

func parseDeployment(s string) (Deployment, error) {
	if s == "" {
		return DeployNone, nil
	}
	switch Deployment(s) {
	case DeployNone, DeployVercel, DeployNetlify, DeployRender:
		return Deployment(s), nil
	default:
		return "", fmt.Errorf("unknown deployment target %q", s)
	}
}
