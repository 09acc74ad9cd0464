package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-autopilot/internal/types"
)

// DefaultTimeout bounds a single source fetch.
const DefaultTimeout = 30 * time.Second

const userAgent = "Mozilla/5.0 (compatible; JobAutopilot/1.0)"

// fetchBody retrieves a URL's body as a string.
func fetchBody(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return string(body), nil
}

// GitHubSource scrapes a markdown internship listing README.
type GitHubSource struct {
	URL    string
	Client *http.Client
	Now    func() time.Time
}

// NewGitHubSource creates a source for the given raw README URL, defaulting
// to the SimplifyJobs listing.
func NewGitHubSource(url string) *GitHubSource {
	if url == "" {
		url = DefaultListingURL
	}
	return &GitHubSource{
		URL:    url,
		Client: &http.Client{Timeout: DefaultTimeout},
		Now:    time.Now,
	}
}

// Name implements Source.
func (s *GitHubSource) Name() string { return "github" }

// Fetch implements Source.
func (s *GitHubSource) Fetch(ctx context.Context) ([]types.Job, error) {
	body, err := fetchBody(ctx, s.Client, s.URL)
	if err != nil {
		return nil, err
	}
	return ParseMarkdownListing(body, s.Now()), nil
}

// BoardSource scrapes an HTML job-board page.
type BoardSource struct {
	URL    string
	Client *http.Client
	Now    func() time.Time
}

// NewBoardSource creates a source for the given board URL.
func NewBoardSource(url string) *BoardSource {
	return &BoardSource{
		URL:    url,
		Client: &http.Client{Timeout: DefaultTimeout},
		Now:    time.Now,
	}
}

// Name implements Source.
func (s *BoardSource) Name() string { return "board" }

// Fetch implements Source.
func (s *BoardSource) Fetch(ctx context.Context) ([]types.Job, error) {
	body, err := fetchBody(ctx, s.Client, s.URL)
	if err != nil {
		return nil, err
	}
	return ParseBoardHTML(body, s.Now())
}

// FetchAll fans out over all sources concurrently and merges their jobs.
// One failing source fails the whole refresh so callers never silently work
// from a partial listing.
func FetchAll(ctx context.Context, sources ...Source) ([]types.Job, error) {
	results := make([][]types.Job, len(sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		g.Go(func() error {
			jobs, err := src.Fetch(ctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			results[i] = jobs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []types.Job
	for _, jobs := range results {
		merged = append(merged, jobs...)
	}
	return merged, nil
}
