package features

// ProjectType selects the scaffold generator family.
type ProjectType string

const (
	ProjectVite ProjectType = "vite"
	ProjectNext ProjectType = "nextjs"
)

// PackageManager is the binary used for dependency installation.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Pnpm PackageManager = "pnpm"
)

// Language is the source language of the generated project.
type Language string

const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
)

// Short returns the variant key used for bundle selection ("ts" or "js").
func (l Language) Short() string {
	if l == TypeScript {
		return "ts"
	}
	return "js"
}

// Deployment is the target platform for generated deployment config.
type Deployment string

const (
	DeployNone    Deployment = "none"
	DeployVercel  Deployment = "vercel"
	DeployNetlify Deployment = "netlify"
	DeployRender  Deployment = "render"
)

// FeatureSet is the canonical, immutable record of all user-selected project
// options. It is created once by the Resolver and read-only thereafter; every
// later stage derives its inputs from this value alone.
type FeatureSet struct {
	ProjectName    string
	ProjectType    ProjectType
	PackageManager PackageManager // resolved to an installed binary
	Language       Language
	ServiceWorker  bool
	Linting        bool
	Testing        bool
	CI             bool
	Security       bool
	GitHooks       bool
	GitInit        bool
	Deployment     Deployment
	InPlace        bool
}

// UseTypeScript reports whether the TypeScript bundle variants apply.
func (f FeatureSet) UseTypeScript() bool {
	return f.Language == TypeScript
}
