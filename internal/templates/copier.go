package templates

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stencil-dev/stencil-cli/internal/features"
	"github.com/stencil-dev/stencil-cli/internal/plan"
)

const (
	// tplSuffix is stripped from template file names on copy.
	tplSuffix = ".tpl"

	// nonTSSuffix marks the plain-JavaScript sibling of a config file.
	// Files carrying it are never emitted under their own name.
	nonTSSuffix = ".nots"

	// viteLintConfigName is the one file with a documented language override:
	// for Vite JavaScript projects its .nots sibling is copied in its place.
	viteLintConfigName = "eslint.config.js"
)

// Copier applies template bundles onto the target tree in plan order.
// Last bundle wins on path collisions; directories merge recursively.
type Copier struct {
	log  *zerolog.Logger
	fsys fs.FS
}

func NewCopier(log *zerolog.Logger) *Copier {
	return &Copier{log: log, fsys: BundleFS()}
}

// NewCopierFS is like NewCopier but with an explicit bundle tree, for tests.
func NewCopierFS(log *zerolog.Logger, fsys fs.FS) *Copier {
	return &Copier{log: log, fsys: fsys}
}

// Apply copies every bundle of the plan into targetDir. A bundle absent from
// the template tree is skipped silently; that is the contract for optional
// bundles, not an error.
func (c *Copier) Apply(ctx context.Context, targetDir string, p plan.Plan, f features.FeatureSet) error {
	for _, ref := range p.Bundles {
		if _, err := fs.Stat(c.fsys, ref.Path()); err != nil {
			c.log.Debug().Msgf("Bundle %s not present, skipping", ref)
			continue
		}
		if err := c.applyBundle(ctx, targetDir, ref, f); err != nil {
			return fmt.Errorf("failed to apply bundle %s: %w", ref, err)
		}
	}
	return nil
}

func (c *Copier) applyBundle(ctx context.Context, targetDir string, ref plan.BundleRef, f features.FeatureSet) error {
	bundlePath := ref.Path()

	return fs.WalkDir(c.fsys, bundlePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, _ := filepath.Rel(bundlePath, path)
		if relPath == "." {
			return nil
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(targetDir, relPath), 0o755)
		}

		// Non-TS siblings are only ever used as override content.
		if strings.HasSuffix(relPath, nonTSSuffix) {
			return nil
		}

		content, err := c.fileContent(path, relPath, ref, f)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(targetDir, strings.TrimSuffix(relPath, tplSuffix))

		finalContent := strings.ReplaceAll(string(content), "{{projectName}}", f.ProjectName)

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", targetPath, err)
		}

		if err := os.WriteFile(targetPath, []byte(finalContent), 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}

		c.log.Debug().Msgf("Copied file to: %s", targetPath)
		return nil
	})
}

// fileContent returns the bytes to write for a bundle file, honoring the
// Vite lint-config override: when the project is Vite with JavaScript and
// the bundle carries a .nots sibling of the lint config, the sibling's
// content replaces the default file.
func (c *Copier) fileContent(path, relPath string, ref plan.BundleRef, f features.FeatureSet) ([]byte, error) {
	if filepath.Base(relPath) == viteLintConfigName &&
		f.ProjectType == features.ProjectVite &&
		!f.UseTypeScript() {
		variant := path + nonTSSuffix
		if _, err := fs.Stat(c.fsys, variant); err == nil {
			c.log.Debug().Msgf("Using non-TS variant for %s in bundle %s", relPath, ref)
			return fs.ReadFile(c.fsys, variant)
		}
	}

	return fs.ReadFile(c.fsys, path)
}
