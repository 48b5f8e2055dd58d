package gitops_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-dev/stencil-cli/internal/features"
	"github.com/stencil-dev/stencil-cli/internal/gitops"
	"github.com/stencil-dev/stencil-cli/internal/pm"
	"github.com/stencil-dev/stencil-cli/internal/testutil"
)

func TestInitAndCommit(t *testing.T) {
	runner := testutil.NewFakeRunner()
	git := gitops.New(testutil.NewTestLogger(), runner, "/tmp/project")

	require.NoError(t, git.InitAndCommit(context.Background()))

	assert.Equal(t, []string{
		"git init",
		"git add -A",
		"git commit -m Initial commit from stencil",
	}, runner.CommandLines())
}

func TestInitAndCommitStopsOnFirstFailure(t *testing.T) {
	runner := testutil.NewFakeRunner().FailOn("git init")
	git := gitops.New(testutil.NewTestLogger(), runner, "/tmp/project")

	require.Error(t, git.InitAndCommit(context.Background()))
	assert.Len(t, runner.Calls(), 1)
}

func TestEnsureGitignoreWritesDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, gitops.EnsureGitignore(dir))

	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "node_modules/")
	assert.Contains(t, string(content), ".env")
}

func TestEnsureGitignoreKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	existing := "custom-entry/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(existing), 0o644))

	require.NoError(t, gitops.EnsureGitignore(dir))

	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, existing, string(content))
}

func TestWriteHooks(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, gitops.WriteHooks(dir, pm.New(features.Pnpm)))

	hookPath := filepath.Join(dir, ".husky", "pre-commit")
	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env sh\npnpm exec lint-staged\n", string(content))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(hookPath)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0o111, "hook must be executable")
	}
}

func TestWriteHooksNpmCommand(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, gitops.WriteHooks(dir, pm.New(features.Npm)))

	content, err := os.ReadFile(filepath.Join(dir, ".husky", "pre-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "npx lint-staged")
}
