package update

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-dev/stencil-cli/internal/testutil"
)

func releaseServer(t *testing.T, tag string, hits *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		fmt.Fprintf(w, `{"tag_name":%q}`, tag)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLatestVersionFetchesAndCaches(t *testing.T) {
	var hits int
	server := releaseServer(t, "v2.1.0", &hits)
	cachePath := filepath.Join(t.TempDir(), "update.json")

	checker := NewChecker(testutil.NewTestLogger(),
		WithAPIURL(server.URL),
		WithCachePath(cachePath))

	latest, err := checker.latestVersion(false)
	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", latest)
	assert.Equal(t, 1, hits)

	// A second check within the cache window must not hit the API.
	latest, err = checker.latestVersion(false)
	require.NoError(t, err)
	assert.Equal(t, "v2.1.0", latest)
	assert.Equal(t, 1, hits)
}

func TestLatestVersionRefetchesAfterCacheExpiry(t *testing.T) {
	var hits int
	server := releaseServer(t, "v2.1.0", &hits)
	cachePath := filepath.Join(t.TempDir(), "update.json")

	current := time.Now()
	checker := NewChecker(testutil.NewTestLogger(),
		WithAPIURL(server.URL),
		WithCachePath(cachePath),
		WithClock(func() time.Time { return current }))

	_, err := checker.latestVersion(false)
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	current = current.Add(25 * time.Hour)
	_, err = checker.latestVersion(false)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestLatestVersionFallsBackToStaleCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "update.json")
	stale := `{"latest_version":"v1.9.0","last_check":"2020-01-01T00:00:00Z"}`
	require.NoError(t, os.WriteFile(cachePath, []byte(stale), 0o640))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	checker := NewChecker(testutil.NewTestLogger(),
		WithAPIURL(server.URL),
		WithCachePath(cachePath))

	latest, err := checker.latestVersion(false)
	require.NoError(t, err)
	assert.Equal(t, "v1.9.0", latest)
}

func TestLoadCacheIgnoresCorruptedFile(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "update.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("not json"), 0o640))

	checker := NewChecker(testutil.NewTestLogger(), WithCachePath(cachePath))
	assert.Equal(t, cacheState{}, checker.loadCache(cachePath))
}

func TestCheckSkipsDevelopmentBuild(t *testing.T) {
	var hits int
	server := releaseServer(t, "v99.0.0", &hits)

	checker := NewChecker(testutil.NewTestLogger(),
		WithAPIURL(server.URL),
		WithCachePath(filepath.Join(t.TempDir(), "update.json")))

	checker.Check("development")
	assert.Zero(t, hits)
}
