package features_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-dev/stencil-cli/internal/features"
	"github.com/stencil-dev/stencil-cli/internal/testutil"
)

func availableProbe(ctx context.Context, pm features.PackageManager) error {
	return nil
}

func TestResolveCanonicalizesLanguageOption(t *testing.T) {
	log := testutil.NewTestLogger()
	resolver := features.NewResolver(log, availableProbe)

	tests := []struct {
		option        string
		language      features.Language
		serviceWorker bool
	}{
		{"ts", features.TypeScript, false},
		{"js", features.JavaScript, false},
		{"ts-sw", features.TypeScript, true},
		{"js-sw", features.JavaScript, true},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			set, err := resolver.Resolve(context.Background(), features.RawSelection{
				ProjectName:    "my-app",
				ProjectType:    "vite",
				PackageManager: "npm",
				LanguageOption: tt.option,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.language, set.Language)
			assert.Equal(t, tt.serviceWorker, set.ServiceWorker)
		})
	}
}

func TestResolveRejectsUnknownLanguageOption(t *testing.T) {
	log := testutil.NewTestLogger()
	resolver := features.NewResolver(log, availableProbe)

	_, err := resolver.Resolve(context.Background(), features.RawSelection{
		ProjectName:    "my-app",
		ProjectType:    "vite",
		LanguageOption: "coffee",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language option")
}

func TestResolveRejectsInvalidProjectName(t *testing.T) {
	log := testutil.NewTestLogger()
	resolver := features.NewResolver(log, availableProbe)

	for _, name := range []string{"", "has space", "semi;colon", "slash/name"} {
		_, err := resolver.Resolve(context.Background(), features.RawSelection{
			ProjectName:    name,
			ProjectType:    "vite",
			LanguageOption: "ts",
		})
		assert.Error(t, err, "name %q should be rejected", name)
	}
}

func TestResolveInPlaceDerivesNameFromWorkingDir(t *testing.T) {
	log := testutil.NewTestLogger()
	resolver := features.NewResolver(log, availableProbe)

	set, err := resolver.Resolve(context.Background(), features.RawSelection{
		ProjectName:    ".",
		ProjectType:    "nextjs",
		LanguageOption: "ts",
		WorkingDir:     "/home/dev/storefront",
	})
	require.NoError(t, err)
	assert.True(t, set.InPlace)
	assert.Equal(t, "storefront", set.ProjectName)
}

func TestResolveFallsBackToNpmWhenPnpmMissing(t *testing.T) {
	log, buf := testutil.NewBufferedLogger()
	probe := func(ctx context.Context, pm features.PackageManager) error {
		if pm == features.Pnpm {
			return fmt.Errorf("exec: \"pnpm\": executable file not found in $PATH")
		}
		return nil
	}
	resolver := features.NewResolver(log, probe)

	set, err := resolver.Resolve(context.Background(), features.RawSelection{
		ProjectName:    "my-app",
		ProjectType:    "vite",
		PackageManager: "pnpm",
		LanguageOption: "ts",
	})
	require.NoError(t, err)
	assert.Equal(t, features.Npm, set.PackageManager)
	assert.Contains(t, buf.String(), "falling back to npm")
}

func TestResolveFailsWhenNpmMissing(t *testing.T) {
	log := testutil.NewTestLogger()
	probe := func(ctx context.Context, pm features.PackageManager) error {
		return fmt.Errorf("not found")
	}
	resolver := features.NewResolver(log, probe)

	_, err := resolver.Resolve(context.Background(), features.RawSelection{
		ProjectName:    "my-app",
		ProjectType:    "vite",
		PackageManager: "npm",
		LanguageOption: "ts",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "npm is not available")
}

func TestResolveDefaultsPackageManagerAndDeployment(t *testing.T) {
	log := testutil.NewTestLogger()
	resolver := features.NewResolver(log, availableProbe)

	set, err := resolver.Resolve(context.Background(), features.RawSelection{
		ProjectName:    "my-app",
		ProjectType:    "vite",
		LanguageOption: "js",
	})
	require.NoError(t, err)
	assert.Equal(t, features.Npm, set.PackageManager)
	assert.Equal(t, features.DeployNone, set.Deployment)
}
