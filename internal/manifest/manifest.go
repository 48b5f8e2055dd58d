package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stencil-dev/stencil-cli/internal/constants"
)

// Manifest is the package.json of the target project. The scaffold generator
// writes the initial file; the merger only ever adds or replaces keys.
type Manifest struct {
	raw map[string]any
}

// Load reads the manifest left by the scaffold generator at the target root.
func Load(targetDir string) (*Manifest, error) {
	path := filepath.Join(targetDir, constants.ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", constants.ManifestFileName, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", constants.ManifestFileName, err)
	}

	return &Manifest{raw: raw}, nil
}

// New returns an empty manifest, for tests.
func New() *Manifest {
	return &Manifest{raw: map[string]any{}}
}

// Save writes the manifest back with two-space indentation.
func (m *Manifest) Save(targetDir string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m.raw); err != nil {
		return fmt.Errorf("failed to encode %s: %w", constants.ManifestFileName, err)
	}

	path := filepath.Join(targetDir, constants.ManifestFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", constants.ManifestFileName, err)
	}
	return nil
}

func (m *Manifest) section(key string) map[string]any {
	if existing, ok := m.raw[key].(map[string]any); ok {
		return existing
	}
	section := map[string]any{}
	m.raw[key] = section
	return section
}

// Script returns a script value and whether it is set.
func (m *Manifest) Script(name string) (string, bool) {
	scripts, ok := m.raw["scripts"].(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := scripts[name].(string)
	return v, ok
}

// StripDefaultPrepare removes a pre-existing "prepare" script when it equals
// the husky toolchain default. The git-hooks stage owns that key exclusively
// and re-adds it only when hooks are selected.
func (m *Manifest) StripDefaultPrepare() {
	scripts, ok := m.raw["scripts"].(map[string]any)
	if !ok {
		return
	}
	if v, ok := scripts["prepare"].(string); ok && v == constants.HuskyPrepareSentinel {
		delete(scripts, "prepare")
	}
}

// AddScripts merges script entries, later writers winning on collision.
// Script values containing single quotes are normalized to double quotes.
func (m *Manifest) AddScripts(scripts map[string]string) {
	section := m.section("scripts")
	for name, value := range scripts {
		section[name] = normalizeQuotes(value)
	}
}

// SetScript sets a single script entry without quote normalization. Used by
// the git-hooks stage for the "prepare" key it owns.
func (m *Manifest) SetScript(name, value string) {
	m.section("scripts")[name] = value
}

// AddDependencies merges entries into the dependencies section.
func (m *Manifest) AddDependencies(deps map[string]string) {
	section := m.section("dependencies")
	for name, version := range deps {
		section[name] = version
	}
}

// AddDevDependencies merges entries into the devDependencies section.
func (m *Manifest) AddDevDependencies(deps map[string]string) {
	section := m.section("devDependencies")
	for name, version := range deps {
		section[name] = version
	}
}

// SetLintStaged merges the lint-staged configuration block.
func (m *Manifest) SetLintStaged(config map[string]any) {
	section := m.section("lint-staged")
	for pattern, commands := range config {
		section[pattern] = commands
	}
}

func normalizeQuotes(value string) string {
	return strings.ReplaceAll(value, "'", `"`)
}
