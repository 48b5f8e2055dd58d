package create

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-dev/stencil-cli/internal/plan"
	"github.com/stencil-dev/stencil-cli/internal/runtime"
	"github.com/stencil-dev/stencil-cli/internal/testutil"
	"github.com/stencil-dev/stencil-cli/internal/validation"
)

func newTestHandler() *handler {
	ctx := &runtime.Context{
		Logger: testutil.NewTestLogger(),
		Viper:  viper.New(),
		Stdin:  testutil.EmptyMockStdinReader(),
	}
	return newHandler(ctx)
}

func TestResolveInputsYesAppliesDefaults(t *testing.T) {
	h := newTestHandler()

	v := viper.New()
	v.Set("yes", true)

	inputs, err := h.ResolveInputs(v)
	require.NoError(t, err)

	assert.Equal(t, "frontend-app", inputs.ProjectName)
	assert.Equal(t, "vite", inputs.ProjectType)
	assert.Equal(t, "npm", inputs.PackageManager)
	assert.Equal(t, "ts", inputs.Language)
	assert.Equal(t, "none", inputs.Deployment)
	assert.False(t, inputs.Linting)
}

func TestResolveInputsYesKeepsExplicitFlags(t *testing.T) {
	h := newTestHandler()

	v := viper.New()
	v.Set("yes", true)
	v.Set("name", "storefront")
	v.Set("type", "nextjs")
	v.Set("language", "js-sw")
	v.Set("git-hooks", true)

	inputs, err := h.ResolveInputs(v)
	require.NoError(t, err)

	assert.Equal(t, "storefront", inputs.ProjectName)
	assert.Equal(t, "nextjs", inputs.ProjectType)
	assert.Equal(t, "js-sw", inputs.Language)
	assert.True(t, inputs.GitHooks)
}

func TestValidateInputs(t *testing.T) {
	valid := Inputs{
		ProjectName:    "my-app",
		ProjectType:    "vite",
		PackageManager: "npm",
		Language:       "ts",
		Deployment:     "vercel",
	}
	h := newTestHandler()
	require.NoError(t, h.ValidateInputs(valid))
	assert.True(t, h.validated)

	v, err := validation.NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name       string
		inputs     Inputs
		wantKey    string
		wantDetail string
	}{
		{
			name:       "bad project name",
			inputs:     Inputs{ProjectName: "has space", ProjectType: "vite", Language: "ts"},
			wantKey:    "Inputs.name",
			wantDetail: `name must contain only letters, numbers, dashes and underscores (or "." for the current directory): has space`,
		},
		{
			name:       "bad project type",
			inputs:     Inputs{ProjectName: "app", ProjectType: "svelte", Language: "ts"},
			wantKey:    "Inputs.type",
			wantDetail: "type must be one of [vite nextjs]",
		},
		{
			name:       "bad language",
			inputs:     Inputs{ProjectName: "app", ProjectType: "vite", Language: "coffee"},
			wantKey:    "Inputs.language",
			wantDetail: "language must be one of ts, js, ts-sw, js-sw: coffee",
		},
		{
			name:       "bad deployment",
			inputs:     Inputs{ProjectName: "app", ProjectType: "vite", Language: "ts", Deployment: "aws"},
			wantKey:    "Inputs.deploy",
			wantDetail: "deploy must be one of [none vercel netlify render]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			err := h.ValidateInputs(tt.inputs)
			require.Error(t, err)
			validation.AssertErrors(t, err, tt.wantKey, tt.wantDetail, v)
			assert.False(t, h.validated)
		})
	}
}

func TestRenderPlanListsBundlesInOrder(t *testing.T) {
	p := plan.Plan{Bundles: []plan.BundleRef{"common/linting", "vite/linting"}}

	out := renderPlan(p)

	first := strings.Index(out, "common/linting")
	second := strings.Index(out, "vite/linting")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestExecuteRejectsUnvalidatedInputs(t *testing.T) {
	h := newTestHandler()

	err := h.Execute(t.Context(), Inputs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not validated")
}
