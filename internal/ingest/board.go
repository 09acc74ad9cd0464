package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-autopilot/internal/types"
)

// ParseBoardHTML extracts jobs from an HTML job-board page. It walks table
// rows first and falls back to elements carrying job-card classes, which
// covers handshake-style exports.
func ParseBoardHTML(html string, now time.Time) ([]types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse board HTML: %w", err)
	}

	var jobs []types.Job
	add := func(company, position, location, url string) {
		company = strings.TrimSpace(company)
		position = strings.TrimSpace(position)
		if company == "" || position == "" || url == "" {
			return
		}
		if location = strings.TrimSpace(location); location == "" {
			location = "Not specified"
		}
		jobs = append(jobs, types.Job{
			ID:          jobID(company, position, now),
			Company:     company,
			Position:    position,
			Location:    location,
			URL:         url,
			Source:      types.JobSourceHandshake,
			PostedDate:  now,
			ScrapedDate: now,
			Requirements: types.Requirements{
				Required:  []string{},
				Preferred: []string{},
				Keywords:  extractKeywords(position),
			},
			Status: types.JobStatusNew,
		})
	}

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		url, _ := row.Find("a").First().Attr("href")
		add(cells.Eq(0).Text(), cells.Eq(1).Text(), cells.Eq(2).Text(), url)
	})

	if len(jobs) > 0 {
		return jobs, nil
	}

	doc.Find(".job-card, .posting, [data-job-id]").Each(func(_ int, card *goquery.Selection) {
		url, _ := card.Find("a").First().Attr("href")
		add(
			card.Find(".company, .company-name").First().Text(),
			card.Find(".title, .job-title, h2, h3").First().Text(),
			card.Find(".location, .job-location").First().Text(),
			url,
		)
	})
	return jobs, nil
}
