package manifest

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/stencil-dev/stencil-cli/internal/features"
)

//go:embed descriptors/*.json
var descriptorsContent embed.FS

// Patch is a set of dependency/script additions merged into the manifest,
// loaded from the per-project-type descriptor file.
type Patch struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
	LintStaged      map[string]any    `json:"lintStagedConfig"`
}

// LoadPatch reads the descriptor for the given project type.
func LoadPatch(pt features.ProjectType) (Patch, error) {
	data, err := descriptorsContent.ReadFile("descriptors/" + string(pt) + ".json")
	if err != nil {
		return Patch{}, fmt.Errorf("no manifest descriptor for project type %s: %w", pt, err)
	}

	var patch Patch
	if err := json.Unmarshal(data, &patch); err != nil {
		return Patch{}, fmt.Errorf("failed to parse manifest descriptor for %s: %w", pt, err)
	}
	return patch, nil
}

// ApplyPatch merges a patch into the manifest. The patch's scripts go through
// the same rules as every other writer: its "prepare" entry is stripped (the
// git-hooks stage owns that key) and quotes are normalized.
func (m *Manifest) ApplyPatch(patch Patch) {
	scripts := make(map[string]string, len(patch.Scripts))
	for name, value := range patch.Scripts {
		if name == "prepare" {
			continue
		}
		scripts[name] = value
	}
	m.AddScripts(scripts)

	if len(patch.Dependencies) > 0 {
		m.AddDependencies(patch.Dependencies)
	}
	if len(patch.DevDependencies) > 0 {
		m.AddDevDependencies(patch.DevDependencies)
	}
	if len(patch.LintStaged) > 0 {
		m.SetLintStaged(patch.LintStaged)
	}
}

// MergeFeatures applies all feature-driven manifest additions in their fixed
// order: lint scripts, test scripts, lint-staged config, then the
// project-type patch. Later writers win on key collision.
func MergeFeatures(m *Manifest, f features.FeatureSet) error {
	m.StripDefaultPrepare()

	if f.Linting {
		m.AddScripts(LintScripts())
	}
	if f.Testing {
		m.AddScripts(TestScripts())
	}
	if f.GitHooks {
		m.SetLintStaged(LintStagedConfig(f))
	}

	patch, err := LoadPatch(f.ProjectType)
	if err != nil {
		return err
	}
	m.ApplyPatch(patch)

	return nil
}

// LintScripts are the script entries added when linting is selected.
func LintScripts() map[string]string {
	return map[string]string{
		"lint":     "eslint .",
		"lint:fix": "eslint . --fix",
		"format":   "prettier --write .",
	}
}

// TestScripts are the script entries added when testing is selected.
func TestScripts() map[string]string {
	return map[string]string{
		"test":          "jest",
		"test:watch":    "jest --watch",
		"test:coverage": "jest --coverage",
	}
}

// LintStagedConfig is the lint-staged block added when git hooks are selected.
func LintStagedConfig(f features.FeatureSet) map[string]any {
	pattern := "*.{js,jsx}"
	if f.UseTypeScript() {
		pattern = "*.{js,jsx,ts,tsx}"
	}

	commands := []string{"prettier --write"}
	if f.Linting {
		commands = []string{"eslint --fix", "prettier --write"}
	}

	return map[string]any{pattern: commands}
}
