package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhabedank/prompt-enhancer/internal/tui"
)

const (
	// GitHubRepo is the repository for version checks.
	GitHubRepo = "dhabedank/prompt-enhancer"

	// CheckInterval is how often to check for updates (24 hours).
	CheckInterval = 24 * time.Hour

	// StateDirName holds the update-check and first-run markers under $HOME.
	StateDirName = ".prompt-enhancer"

	defaultAPIURL = "https://api.github.com"
)

// GitHubRelease represents a GitHub release.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult holds the result of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Checker looks up the latest release, at most once per CheckInterval.
type Checker struct {
	APIURL   string
	StateDir string
	Client   *http.Client
}

// NewChecker returns a checker against GitHub with state in ~/.prompt-enhancer.
func NewChecker() *Checker {
	return &Checker{
		APIURL:   defaultAPIURL,
		StateDir: StateDir(),
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// StateDir returns ~/.prompt-enhancer, or "" when there is no home directory.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, StateDirName)
}

// CheckForUpdate checks if a newer version is available.
// Returns nil if check should be skipped (checked recently) or on error.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) *CheckResult {
	// Skip if running dev version
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}

	if c.shouldSkipCheck() {
		return nil
	}
	c.markChecked()

	latest, err := c.fetchLatestRelease(ctx)
	if err != nil {
		return nil // Silently fail - don't block user
	}

	latestClean := strings.TrimPrefix(latest.TagName, "v")
	currentClean := strings.TrimPrefix(currentVersion, "v")

	if isNewerVersion(latestClean, currentClean) {
		return &CheckResult{
			CurrentVersion:  currentVersion,
			LatestVersion:   latest.TagName,
			UpdateAvailable: true,
			ReleaseURL:      latest.HTMLURL,
		}
	}

	return nil
}

// PrintUpdateNotice prints a notice if an update is available.
func PrintUpdateNotice(w io.Writer, result *CheckResult) {
	if result == nil || !result.UpdateAvailable {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s A new version of prompt-enhancer is available: %s (you have %s)\n",
		tui.WarningStyle.Render("!"),
		tui.SuccessStyle.Render(result.LatestVersion),
		result.CurrentVersion,
	)
	fmt.Fprintf(w, "  Update: %s\n", tui.HelpStyle.Render("go install github.com/"+GitHubRepo+"@latest"))
	if result.ReleaseURL != "" {
		fmt.Fprintf(w, "  Release notes: %s\n", tui.HelpStyle.Render(result.ReleaseURL))
	}
	fmt.Fprintln(w)
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (*GitHubRelease, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.APIURL, GitHubRepo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}

	return &release, nil
}

func (c *Checker) markerPath() string {
	if c.StateDir == "" {
		return ""
	}
	return filepath.Join(c.StateDir, ".last-update-check")
}

// shouldSkipCheck returns true if we checked recently or have nowhere to
// record the check.
func (c *Checker) shouldSkipCheck() bool {
	markerPath := c.markerPath()
	if markerPath == "" {
		return true
	}
	info, err := os.Stat(markerPath)
	if err != nil {
		return false // No marker, should check
	}

	return time.Since(info.ModTime()) < CheckInterval
}

// markChecked updates the marker file timestamp.
func (c *Checker) markChecked() {
	markerPath := c.markerPath()
	if err := os.MkdirAll(filepath.Dir(markerPath), 0755); err != nil {
		return
	}

	if _, err := os.Stat(markerPath); os.IsNotExist(err) {
		_ = os.WriteFile(markerPath, []byte{}, 0644)
	} else {
		now := time.Now()
		_ = os.Chtimes(markerPath, now, now)
	}
}

// isNewerVersion returns true if latest is newer than current.
// Simple comparison: splits by dots and compares numerically.
func isNewerVersion(latest, current string) bool {
	latestParts := strings.Split(latest, ".")
	currentParts := strings.Split(current, ".")

	for i := 0; i < len(latestParts) && i < len(currentParts); i++ {
		l := parseVersionPart(latestParts[i])
		c := parseVersionPart(currentParts[i])

		if l > c {
			return true
		}
		if l < c {
			return false
		}
	}

	// If all compared parts are equal, longer version is newer
	return len(latestParts) > len(currentParts)
}

// parseVersionPart extracts a number from a version part (e.g., "1" from "1-beta").
func parseVersionPart(s string) int {
	var n int
	_, _ = fmt.Sscanf(s, "%d", &n)
	return n
}
