package installer

import (
	"slices"

	"github.com/stencil-dev/stencil-cli/internal/features"
)

// Batch holds the disjoint dependency and devDependency specifier lists for
// one run. It is computed purely from the FeatureSet, with no I/O, so two
// identical FeatureSets always produce byte-identical lists.
type Batch struct {
	Dependencies    []string
	DevDependencies []string
}

// HasDevDependency reports whether the dev batch contains the specifier.
func (b Batch) HasDevDependency(spec string) bool {
	return slices.Contains(b.DevDependencies, spec)
}

// ComputeBatch derives the install batch from the FeatureSet. Append order
// is fixed so the resulting lists are deterministic.
func ComputeBatch(f features.FeatureSet) Batch {
	var b Batch

	if f.Linting {
		b.DevDependencies = append(b.DevDependencies, "eslint", "prettier")
		if f.UseTypeScript() {
			b.DevDependencies = append(b.DevDependencies, "typescript-eslint")
		}
		if f.ProjectType == features.ProjectVite {
			b.DevDependencies = append(b.DevDependencies,
				"eslint-plugin-react", "eslint-plugin-react-hooks")
		}
	}

	if f.Testing {
		b.DevDependencies = append(b.DevDependencies,
			"jest", "@testing-library/jest-dom", "@testing-library/react")
		if f.UseTypeScript() {
			b.DevDependencies = append(b.DevDependencies, "@types/jest", "ts-jest")
		}
		if f.ProjectType == features.ProjectVite {
			b.DevDependencies = append(b.DevDependencies,
				"jest-environment-jsdom", "@vitejs/plugin-react")
		}
	}

	if f.ServiceWorker {
		switch f.ProjectType {
		case features.ProjectVite:
			b.DevDependencies = append(b.DevDependencies, "workbox-window", "vite-plugin-pwa")
		case features.ProjectNext:
			// next-pwa wraps the runtime, so it is a regular dependency.
			b.Dependencies = append(b.Dependencies, "next-pwa")
		}
	}

	if f.GitHooks {
		b.DevDependencies = append(b.DevDependencies, "husky", "lint-staged")
	}

	return b
}
