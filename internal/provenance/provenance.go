package provenance

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/features"
)

// Record is the provenance file written at the target root: the resolved
// FeatureSet plus a timestamp, so a generated project documents how it was
// composed.
type Record struct {
	ProjectName    string   `yaml:"projectName"`
	ProjectType    string   `yaml:"projectType"`
	PackageManager string   `yaml:"packageManager"`
	Language       string   `yaml:"language"`
	Deployment     string   `yaml:"deployment"`
	Features       []string `yaml:"features"`
	GeneratedAt    string   `yaml:"generatedAt"`
}

// NewRecord builds a Record from the resolved FeatureSet.
func NewRecord(f features.FeatureSet, now time.Time) Record {
	var enabled []string
	for _, toggle := range []struct {
		name string
		on   bool
	}{
		{"serviceWorker", f.ServiceWorker},
		{"linting", f.Linting},
		{"testing", f.Testing},
		{"ci", f.CI},
		{"security", f.Security},
		{"gitHooks", f.GitHooks},
		{"gitInit", f.GitInit},
	} {
		if toggle.on {
			enabled = append(enabled, toggle.name)
		}
	}

	return Record{
		ProjectName:    f.ProjectName,
		ProjectType:    string(f.ProjectType),
		PackageManager: string(f.PackageManager),
		Language:       string(f.Language),
		Deployment:     string(f.Deployment),
		Features:       enabled,
		GeneratedAt:    now.UTC().Format(time.RFC3339),
	}
}

// Write marshals the record to the provenance file at the target root.
func Write(dir string, record Record) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal provenance record: %w", err)
	}

	path := filepath.Join(dir, constants.ProvenanceFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write provenance file: %w", err)
	}
	return nil
}
