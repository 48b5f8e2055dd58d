package update

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
)

const (
	defaultAPIURL = "https://api.github.com/repos/stencil-dev/stencil-cli/releases/latest"
	releasesURL   = "https://github.com/stencil-dev/stencil-cli/releases"
	fetchTimeout  = 2 * time.Second
	cacheDuration = 24 * time.Hour
	cacheDirName  = ".stencil"
	cacheFileName = "update.json"

	forceCheckEnv = "STENCIL_FORCE_UPDATE_CHECK"
)

type githubRelease struct {
	TagName string `json:"tag_name"`
}

// cacheState avoids hitting the GitHub API more than once per day.
type cacheState struct {
	LatestVersion string    `json:"latest_version"`
	LastCheck     time.Time `json:"last_check"`
}

// Checker compares the running version against the latest published release.
// APIURL and CachePath are settable for tests; the zero values fall back to
// the GitHub API and a cache file under the user's home directory.
type Checker struct {
	log       *zerolog.Logger
	apiURL    string
	cachePath string
	now       func() time.Time
}

type Option func(*Checker)

func WithAPIURL(url string) Option {
	return func(c *Checker) { c.apiURL = url }
}

func WithCachePath(path string) Option {
	return func(c *Checker) { c.cachePath = path }
}

func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

func NewChecker(log *zerolog.Logger, opts ...Option) *Checker {
	c := &Checker{
		log:    log,
		apiURL: defaultAPIURL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check fetches the latest release tag, using the daily cache, and prints an
// upgrade notice to stderr when a newer version exists. Every failure is a
// debug log and a silent return; an update check must never break a run.
func (c *Checker) Check(currentVersion string) {
	forceCheck := os.Getenv(forceCheckEnv) == "1"
	if currentVersion == "development" && !forceCheck {
		c.log.Debug().Msg("Development build, skipping update check")
		return
	}

	currentSemVer, err := semver.NewVersion(strings.TrimSpace(currentVersion))
	if err != nil {
		c.log.Debug().Msgf("Unparseable current version %q: %v", currentVersion, err)
		return
	}

	latest, err := c.latestVersion(forceCheck)
	if err != nil {
		c.log.Debug().Msgf("Update check failed: %v", err)
		return
	}

	latestSemVer, err := semver.NewVersion(latest)
	if err != nil {
		c.log.Debug().Msgf("Unparseable release tag %q: %v", latest, err)
		return
	}

	if latestSemVer.GreaterThan(currentSemVer) {
		fmt.Fprintf(os.Stderr,
			"\nUpdate available: you are running %s, the latest release is %s.\nVisit %s to upgrade.\n\n",
			currentSemVer, latestSemVer, releasesURL)
	}
}

func (c *Checker) latestVersion(forceCheck bool) (string, error) {
	cachePath, err := c.resolveCachePath()
	if err != nil {
		return "", err
	}

	cache := c.loadCache(cachePath)
	if !forceCheck && c.now().Sub(cache.LastCheck) <= cacheDuration && cache.LatestVersion != "" {
		c.log.Debug().Msgf("Using cached latest version %s", cache.LatestVersion)
		return cache.LatestVersion, nil
	}

	tag, err := c.fetchLatestTag()
	if err != nil {
		if cache.LatestVersion != "" {
			// Stale data beats no data.
			return cache.LatestVersion, nil
		}
		return "", err
	}

	cache.LatestVersion = tag
	cache.LastCheck = c.now()
	if err := c.saveCache(cachePath, cache); err != nil {
		c.log.Debug().Msgf("Failed to save update cache: %v", err)
	}
	return tag, nil
}

func (c *Checker) resolveCachePath() (string, error) {
	if c.cachePath != "" {
		return c.cachePath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, cacheDirName, cacheFileName), nil
}

func (c *Checker) loadCache(path string) cacheState {
	data, err := os.ReadFile(path)
	if err != nil {
		return cacheState{}
	}

	var state cacheState
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupted cache gets overwritten on the next save.
		c.log.Debug().Msgf("Ignoring corrupted update cache: %v", err)
		return cacheState{}
	}
	return state
}

func (c *Checker) saveCache(path string, state cacheState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o640)
}

func (c *Checker) fetchLatestTag() (string, error) {
	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequest(http.MethodGet, c.apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "stencil-update-check")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github API returned %s", resp.Status)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode release response: %w", err)
	}
	if release.TagName == "" {
		return "", errors.New("release response contained no tag_name")
	}
	return release.TagName, nil
}
