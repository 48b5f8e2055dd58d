package constants

const (
	// Default Values
	DefaultProjectName    = "frontend-app"
	DefaultPackageManager = "npm"

	// Limits
	MaxProjectNameLength = 64

	// InPlaceSentinel is the project name a user passes to scaffold into
	// the current directory instead of a new one.
	InPlaceSentinel = "."

	// Filesystem artifacts
	ManifestFileName   = "package.json"
	ReadmeFileName     = "README.md"
	GitignoreFileName  = ".gitignore"
	ProvenanceFileName = ".stencil.yaml"
	HuskyDirName       = ".husky"
	PreCommitHookName  = "pre-commit"

	// HuskyPrepareSentinel is the script the husky toolchain installs as the
	// default "prepare" entry. The git-hooks stage owns that key, so a
	// pre-existing entry equal to this value is stripped before merging.
	HuskyPrepareSentinel = "husky"

	// Logging
	DefaultLogLevel = "info"
)
