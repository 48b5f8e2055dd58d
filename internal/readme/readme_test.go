package readme_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-dev/stencil-cli/internal/features"
	"github.com/stencil-dev/stencil-cli/internal/readme"
	"github.com/stencil-dev/stencil-cli/internal/testutil"
)

func TestGenerateWritesReadme(t *testing.T) {
	dir := t.TempDir()
	f := features.FeatureSet{
		ProjectName: "storefront",
		ProjectType: features.ProjectVite,
		Language:    features.TypeScript,
		Linting:     true,
	}

	require.NoError(t, readme.Generate(testutil.NewTestLogger(), dir, f))

	content, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	doc := string(content)

	assert.Contains(t, doc, "# storefront")
	assert.Contains(t, doc, "bootstrapped with [Vite]")
	assert.NotContains(t, doc, "{{projectName}}")
	assert.NotContains(t, doc, "{{bootstrap}}")
	assert.NotContains(t, doc, "<!-- features -->")
	assert.NotContains(t, doc, "<!-- tree -->")
}

func TestGenerateUnknownProjectTypeIsSkipped(t *testing.T) {
	dir := t.TempDir()
	f := features.FeatureSet{ProjectType: features.ProjectType("svelte")}

	require.NoError(t, readme.Generate(testutil.NewTestLogger(), dir, f))

	_, err := os.Stat(filepath.Join(dir, "README.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderFeatureBullets(t *testing.T) {
	f := features.FeatureSet{
		ProjectName:   "app",
		ProjectType:   features.ProjectVite,
		Language:      features.JavaScript,
		ServiceWorker: true,
		Testing:       true,
		Deployment:    features.DeployNetlify,
	}

	doc := readme.Render("<!-- features -->", f)

	assert.Contains(t, doc, "- JavaScript")
	assert.Contains(t, doc, "- Progressive Web App with a service worker")
	assert.Contains(t, doc, "- Testing with Jest and Testing Library")
	assert.Contains(t, doc, "- Deployment configuration for netlify")
	assert.NotContains(t, doc, "ESLint")
}

func TestRenderRemovesDisabledBadges(t *testing.T) {
	skeleton := strings.Join([]string{
		"# {{projectName}}",
		"![lint](https://img.shields.io/badge/lint-passing-brightgreen)",
		"![tests](https://img.shields.io/badge/tests-passing-brightgreen)",
		"![ci](https://img.shields.io/badge/ci-passing-brightgreen)",
		"![security](https://img.shields.io/badge/security-audited-blue)",
	}, "\n")

	f := features.FeatureSet{
		ProjectName: "app",
		ProjectType: features.ProjectVite,
		Language:    features.TypeScript,
		Linting:     true,
		CI:          true,
	}

	doc := readme.Render(skeleton, f)

	assert.Contains(t, doc, "badge/lint")
	assert.Contains(t, doc, "badge/ci")
	assert.NotContains(t, doc, "badge/tests")
	assert.NotContains(t, doc, "badge/security")
}

func TestRenderDirectoryTree(t *testing.T) {
	f := features.FeatureSet{
		ProjectName: "app",
		ProjectType: features.ProjectVite,
		Language:    features.TypeScript,
		Linting:     true,
		Testing:     true,
		GitHooks:    true,
		CI:          true,
		Deployment:  features.DeployVercel,
	}

	doc := readme.Render("<!-- tree -->", f)

	want := []string{
		"├── node_modules/",
		"├── public/",
		"├── src/",
		"├── .github/",
		"├── .husky/",
		"├── jest.config.ts",
		"├── eslint.config.js",
		"├── vercel.json",
		"├── .gitignore",
		"├── package.json",
		"└── tsconfig.json",
	}

	var at int
	for _, line := range want {
		idx := strings.Index(doc[at:], line)
		require.GreaterOrEqual(t, idx, 0, "missing or out of order: %s", line)
		at += idx + len(line)
	}
}

func TestRenderDirectoryTreeJavaScriptNext(t *testing.T) {
	f := features.FeatureSet{
		ProjectName: "app",
		ProjectType: features.ProjectNext,
		Language:    features.JavaScript,
		Linting:     true,
		Testing:     true,
	}

	doc := readme.Render("<!-- tree -->", f)

	assert.Contains(t, doc, "├── app/")
	assert.Contains(t, doc, "├── jest.config.js")
	assert.Contains(t, doc, "├── .eslintrc.json")
	assert.Contains(t, doc, "└── jsconfig.json")
	assert.NotContains(t, doc, "src/")
	assert.NotContains(t, doc, "tsconfig.json")
}

func TestRenderMissingPlaceholderLeavesDocIntact(t *testing.T) {
	f := features.FeatureSet{
		ProjectName: "app",
		ProjectType: features.ProjectVite,
		Language:    features.TypeScript,
	}

	doc := readme.Render("# plain readme with no markers\n", f)
	assert.Equal(t, "# plain readme with no markers\n", doc)
}
