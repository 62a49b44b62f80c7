// Package selfupdate checks GitHub releases for a newer quizview build.
// It only reports; installing a new build is left to the user's package
// manager or a manual download.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner   = "ignaciourbina"
	defaultRepo    = "quizview"
	defaultAPIBase = "https://api.github.com"
)

// ErrDevBuild means the running binary has no release version to compare.
var ErrDevBuild = errors.New("cannot check a development build")

// Checker queries the release API.
type Checker struct {
	owner   string
	repo    string
	apiBase string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithAPIBase points the checker at a different API host (tests).
func WithAPIBase(base string) Option {
	return func(c *Checker) { c.apiBase = strings.TrimRight(base, "/") }
}

// NewChecker returns a Checker for the quizview repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:   defaultOwner,
		repo:    defaultRepo,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckResult reports the comparison outcome.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check fetches the latest release tag and compares it with version
// using semantic version ordering.
func (c *Checker) Check(ctx context.Context, version string) (*CheckResult, error) {
	if version == "" || version == "(devel)" {
		return nil, ErrDevBuild
	}

	latest, err := c.latestTag(ctx)
	if err != nil {
		return nil, err
	}

	current := canonical(version)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("current version %q is not a semantic version", version)
	}

	return &CheckResult{
		CurrentVersion:  version,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(canonical(latest), current) > 0,
	}, nil
}

// canonical prefixes the leading v that semver requires and release tags
// sometimes omit.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

func (c *Checker) latestTag(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBase, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch latest release: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release response: %w", err)
	}
	if release.TagName == "" {
		return "", errors.New("release response has no tag name")
	}
	return release.TagName, nil
}
