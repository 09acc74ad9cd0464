// Package ingest pulls job postings from external sources and normalizes
// them into tracked jobs.
package ingest

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// DefaultListingURL is the raw README of the SimplifyJobs internships repo.
const DefaultListingURL = "https://raw.githubusercontent.com/SimplifyJobs/Summer2026-Internships/dev/README.md"

// Source produces normalized jobs from one upstream listing.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]types.Job, error)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// jobID derives a stable-ish identifier from company and position plus a
// base-36 timestamp to disambiguate re-scrapes.
func jobID(company, position string, now time.Time) string {
	clean := func(s string) string {
		return nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	}
	return fmt.Sprintf("%s-%s-%s", clean(company), clean(position), strconv.FormatInt(now.UnixMilli(), 36))
}

// Skill vocabularies checked against job titles during ingestion.
var (
	titleLanguages = []string{
		"java", "python", "javascript", "typescript", "c++", "c#",
		"go", "rust", "swift", "kotlin", "ruby", "php",
	}
	titleRoles = []string{
		"frontend", "backend", "fullstack", "full-stack", "devops", "mobile",
		"ios", "android", "ml", "machine learning", "data", "security",
		"cloud", "ai",
	}
	titleTech = []string{
		"react", "vue", "angular", "node", "aws", "azure", "gcp",
		"docker", "kubernetes",
	}
)

// extractKeywords scans a job title for known languages, roles and
// technologies. Results are deduplicated and keep vocabulary order.
func extractKeywords(title string) []string {
	lower := strings.ToLower(title)
	seen := make(map[string]bool)
	var keywords []string
	for _, vocab := range [][]string{titleLanguages, titleRoles, titleTech} {
		for _, kw := range vocab {
			if strings.Contains(lower, kw) && !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}
	if keywords == nil {
		keywords = []string{}
	}
	return keywords
}

// NewManualJob builds a job from partial manually-entered data, filling
// defaults for anything missing.
func NewManualJob(company, position, location, url string, now time.Time) types.Job {
	if company == "" {
		company = "Unknown Company"
	}
	if position == "" {
		position = "Internship"
	}
	if location == "" {
		location = "Not specified"
	}
	return types.Job{
		ID:          jobID(company, position, now),
		Company:     company,
		Position:    position,
		Location:    location,
		URL:         url,
		Source:      types.JobSourceManual,
		PostedDate:  now,
		ScrapedDate: now,
		Requirements: types.Requirements{
			Required:  []string{},
			Preferred: []string{},
			Keywords:  extractKeywords(position),
		},
		Status: types.JobStatusNew,
	}
}
