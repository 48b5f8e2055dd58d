package readme

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/features"
)

//go:embed skeletons/*.md
var skeletonsContent embed.FS

const (
	namePlaceholder      = "{{projectName}}"
	bootstrapPlaceholder = "{{bootstrap}}"
	featuresPlaceholder  = "<!-- features -->"
	treePlaceholder      = "<!-- tree -->"
)

// badgeMarkers identify the badge line for each toggleable feature. Lines
// whose feature is disabled are removed wholesale.
var badgeMarkers = []struct {
	marker  string
	enabled func(features.FeatureSet) bool
}{
	{"badge/lint", func(f features.FeatureSet) bool { return f.Linting }},
	{"badge/tests", func(f features.FeatureSet) bool { return f.Testing }},
	{"badge/ci", func(f features.FeatureSet) bool { return f.CI }},
	{"badge/security", func(f features.FeatureSet) bool { return f.Security }},
}

// Generate renders the README from the project-type skeleton. A missing
// skeleton is skipped silently; a missing placeholder leaves its section
// unchanged rather than failing the run. The document is regenerated
// wholesale, never patched in place.
func Generate(log *zerolog.Logger, targetDir string, f features.FeatureSet) error {
	data, err := skeletonsContent.ReadFile("skeletons/" + string(f.ProjectType) + ".md")
	if err != nil {
		log.Debug().Msgf("No README skeleton for project type %s, skipping", f.ProjectType)
		return nil
	}

	doc := Render(string(data), f)

	path := filepath.Join(targetDir, constants.ReadmeFileName)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", constants.ReadmeFileName, err)
	}
	return nil
}

// Render applies the four substitution passes in order: project name,
// bootstrap sentence, feature bullets, badge removal, directory tree.
func Render(skeleton string, f features.FeatureSet) string {
	doc := strings.ReplaceAll(skeleton, namePlaceholder, f.ProjectName)
	doc = strings.ReplaceAll(doc, bootstrapPlaceholder, bootstrapSentence(f.ProjectType))
	doc = strings.ReplaceAll(doc, featuresPlaceholder, featureBullets(f))
	doc = removeDisabledBadges(doc, f)
	doc = strings.ReplaceAll(doc, treePlaceholder, directoryTree(f))
	return doc
}

func bootstrapSentence(pt features.ProjectType) string {
	if pt == features.ProjectNext {
		return "This project was bootstrapped with [create-next-app](https://nextjs.org/docs/app/api-reference/cli/create-next-app)."
	}
	return "This project was bootstrapped with [Vite](https://vite.dev)."
}

// featureBullets rebuilds the feature block entirely from the FeatureSet.
func featureBullets(f features.FeatureSet) string {
	var bullets []string

	if f.UseTypeScript() {
		bullets = append(bullets, "- TypeScript")
	} else {
		bullets = append(bullets, "- JavaScript")
	}
	if f.ServiceWorker {
		bullets = append(bullets, "- Progressive Web App with a service worker")
	}
	if f.Linting {
		bullets = append(bullets, "- Linting with ESLint and Prettier")
	}
	if f.Testing {
		bullets = append(bullets, "- Testing with Jest and Testing Library")
	}
	if f.CI {
		bullets = append(bullets, "- Continuous integration with GitHub Actions")
	}
	if f.Security {
		bullets = append(bullets, "- Security policy and Dependabot updates")
	}
	if f.GitHooks {
		bullets = append(bullets, "- Pre-commit hooks with husky and lint-staged")
	}
	if f.Deployment != features.DeployNone {
		bullets = append(bullets, fmt.Sprintf("- Deployment configuration for %s", f.Deployment))
	}

	return strings.Join(bullets, "\n")
}

func removeDisabledBadges(doc string, f features.FeatureSet) string {
	lines := strings.Split(doc, "\n")
	kept := lines[:0]

line:
	for _, l := range lines {
		for _, b := range badgeMarkers {
			if strings.Contains(l, b.marker) && !b.enabled(f) {
				continue line
			}
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}

// directoryTree assembles the project tree block in fixed priority order:
// node_modules first, the project-type source directories, conditional
// tool-config entries, trailer entries, ending with the TypeScript-vs-plain
// config filename.
func directoryTree(f features.FeatureSet) string {
	entries := []string{"node_modules/"}

	if f.ProjectType == features.ProjectNext {
		entries = append(entries, "app/", "public/")
	} else {
		entries = append(entries, "public/", "src/")
	}

	if f.CI || f.Security {
		entries = append(entries, ".github/")
	}
	if f.GitHooks {
		entries = append(entries, ".husky/")
	}
	if f.Testing {
		if f.UseTypeScript() {
			entries = append(entries, "jest.config.ts")
		} else {
			entries = append(entries, "jest.config.js")
		}
	}
	if f.Linting {
		if f.ProjectType == features.ProjectNext {
			entries = append(entries, ".eslintrc.json")
		} else {
			entries = append(entries, "eslint.config.js")
		}
	}
	switch f.Deployment {
	case features.DeployVercel:
		entries = append(entries, "vercel.json")
	case features.DeployNetlify:
		entries = append(entries, "netlify.toml")
	case features.DeployRender:
		entries = append(entries, "render.yaml")
	}

	entries = append(entries, ".gitignore", "package.json")
	if f.UseTypeScript() {
		entries = append(entries, "tsconfig.json")
	} else {
		entries = append(entries, "jsconfig.json")
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(f.ProjectName + "/\n")
	for i, entry := range entries {
		if i == len(entries)-1 {
			sb.WriteString("└── " + entry + "\n")
		} else {
			sb.WriteString("├── " + entry + "\n")
		}
	}
	sb.WriteString("```")
	return sb.String()
}
