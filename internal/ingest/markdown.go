package ingest

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// The internships README lists openings as a markdown table headed
// Company | Role | Location. Everything outside that table is ignored.
var (
	tableRe        = regexp.MustCompile(`(?s)\|[^\n]*Company[^\n]*\|[^\n]*Role[^\n]*\|[^\n]*Location[^\n]*\|.*?\n\n`)
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	emphasisRe     = regexp.MustCompile("[*_~`]")
	htmlTagRe      = regexp.MustCompile(`<[^>]+>`)
	rawURLRe       = regexp.MustCompile(`https?://[^\s)]+`)
)

type parsedRow struct {
	company  string
	position string
	location string
	url      string
}

// ParseMarkdownListing extracts jobs from a markdown README table. Rows
// missing a company, position or URL are skipped rather than failing the
// whole listing.
func ParseMarkdownListing(markdown string, now time.Time) []types.Job {
	table := tableRe.FindString(markdown)
	if table == "" {
		// Some revisions end the table at EOF without a trailing blank line.
		table = tableRe.FindString(markdown + "\n\n")
	}
	if table == "" {
		log.Printf("[ingest] no listing table found in markdown")
		return nil
	}

	var rows []string
	for _, line := range strings.Split(table, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			rows = append(rows, line)
		}
	}
	if len(rows) <= 2 {
		return nil
	}

	var jobs []types.Job
	// Skip the header and separator rows.
	for _, row := range rows[2:] {
		parsed, ok := parseTableRow(row)
		if !ok {
			continue
		}
		jobs = append(jobs, types.Job{
			ID:          jobID(parsed.company, parsed.position, now),
			Company:     parsed.company,
			Position:    parsed.position,
			Location:    parsed.location,
			URL:         parsed.url,
			Source:      types.JobSourceGitHub,
			PostedDate:  now,
			ScrapedDate: now,
			Requirements: types.Requirements{
				Required:  []string{},
				Preferred: []string{},
				Keywords:  extractKeywords(parsed.position),
			},
			Status: types.JobStatusNew,
		})
	}
	return jobs
}

// parseTableRow splits one `| Company | Position | Location | Link |` row.
func parseTableRow(row string) (parsedRow, bool) {
	var cells []string
	for _, cell := range strings.Split(row, "|") {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	if len(cells) < 3 {
		return parsedRow{}, false
	}

	parsed := parsedRow{
		company:  markdownText(cells[0]),
		position: markdownText(cells[1]),
		location: markdownText(cells[2]),
	}

	// The application link usually sits in its own column but sometimes
	// wraps the position or company instead.
	for _, cell := range []string{cellAt(cells, 3), cells[1], cells[0]} {
		if url := markdownURL(cell); url != "" {
			parsed.url = url
			break
		}
	}

	if parsed.company == "" || parsed.position == "" || parsed.url == "" {
		return parsedRow{}, false
	}
	if parsed.location == "" {
		parsed.location = "Not specified"
	}
	return parsed, true
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// markdownText strips links (keeping their text), emphasis markers and HTML
// tags from a table cell.
func markdownText(s string) string {
	s = markdownLinkRe.ReplaceAllString(s, "$1")
	s = emphasisRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// markdownURL pulls the first link target, or failing that a raw URL.
func markdownURL(s string) string {
	if m := markdownLinkRe.FindStringSubmatch(s); m != nil {
		return m[2]
	}
	return rawURLRe.FindString(s)
}
