package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-autopilot/internal/types"
)

const sampleReadme = `# Summer Internships

Some intro text.

| Company | Role | Location | Application | Date |
| ------- | ---- | -------- | ----------- | ---- |
| **[Acme Corp](https://acme.example)** | Backend Engineer Intern (Go) | Remote | [Apply](https://acme.example/jobs/1) | Aug 20 |
| Globex | [Frontend React Intern](https://globex.example/fe) | NYC, NY | | Aug 21 |
| Initech | Data Science Intern | SF, CA | [Apply](https://initech.example/ds) | Aug 22 |
| Broken Row | | | | |

That concludes the listing.
`

func TestParseMarkdownListing(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	jobs := ParseMarkdownListing(sampleReadme, now)
	require.Len(t, jobs, 3)

	acme := jobs[0]
	assert.Equal(t, "Acme Corp", acme.Company)
	assert.Equal(t, "Backend Engineer Intern (Go)", acme.Position)
	assert.Equal(t, "Remote", acme.Location)
	assert.Equal(t, "https://acme.example/jobs/1", acme.URL)
	assert.Equal(t, types.JobSourceGitHub, acme.Source)
	assert.Equal(t, types.JobStatusNew, acme.Status)
	assert.Contains(t, acme.Requirements.Keywords, "backend")
	assert.Contains(t, acme.Requirements.Keywords, "go")

	// Link taken from the position cell when the application column is empty.
	globex := jobs[1]
	assert.Equal(t, "Frontend React Intern", globex.Position)
	assert.Equal(t, "https://globex.example/fe", globex.URL)

	initech := jobs[2]
	assert.Equal(t, "SF, CA", initech.Location)
	assert.Contains(t, initech.Requirements.Keywords, "data")
}

func TestParseMarkdownListing_NoTable(t *testing.T) {
	jobs := ParseMarkdownListing("# Nothing here\n\nJust prose.\n", time.Now())
	assert.Empty(t, jobs)
}

func TestParseMarkdownListing_UniqueNonEmptyIDs(t *testing.T) {
	jobs := ParseMarkdownListing(sampleReadme, time.Now())
	seen := make(map[string]bool)
	for _, j := range jobs {
		require.NotEmpty(t, j.ID)
		assert.False(t, seen[j.ID], "duplicate id %s", j.ID)
		seen[j.ID] = true
	}
}

func TestExtractKeywords(t *testing.T) {
	kws := extractKeywords("Senior Machine Learning Engineer Intern (Python, AWS)")
	assert.Contains(t, kws, "python")
	assert.Contains(t, kws, "machine learning")
	assert.Contains(t, kws, "aws")

	// Deduplicated even when the title repeats a term.
	kws = extractKeywords("Go go go backend backend")
	count := 0
	for _, k := range kws {
		if k == "backend" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	assert.Empty(t, extractKeywords("Barista"))
	assert.NotNil(t, extractKeywords("Barista"))
}

func TestNewManualJob_Defaults(t *testing.T) {
	now := time.Now()
	j := NewManualJob("", "", "", "", now)

	assert.Equal(t, "Unknown Company", j.Company)
	assert.Equal(t, "Internship", j.Position)
	assert.Equal(t, "Not specified", j.Location)
	assert.Equal(t, types.JobSourceManual, j.Source)
	assert.NotEmpty(t, j.ID)
	assert.NotNil(t, j.Requirements.Keywords)
}

const sampleBoard = `<html><body>
<table>
  <thead><tr><th>Company</th><th>Role</th><th>Location</th></tr></thead>
  <tbody>
    <tr><td>Acme</td><td>iOS Intern</td><td>Austin, TX</td><td><a href="https://board.example/1">Apply</a></td></tr>
    <tr><td>Globex</td><td>Cloud Intern</td><td></td><td><a href="https://board.example/2">Apply</a></td></tr>
    <tr><td>NoLink</td><td>Intern</td><td>Remote</td><td></td></tr>
  </tbody>
</table>
</body></html>`

func TestParseBoardHTML(t *testing.T) {
	jobs, err := ParseBoardHTML(sampleBoard, time.Now())
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "iOS Intern", jobs[0].Position)
	assert.Equal(t, "https://board.example/1", jobs[0].URL)
	assert.Equal(t, types.JobSourceHandshake, jobs[0].Source)
	assert.Contains(t, jobs[0].Requirements.Keywords, "ios")

	assert.Equal(t, "Not specified", jobs[1].Location)
}

func TestParseBoardHTML_CardFallback(t *testing.T) {
	html := `<div class="job-card">
		<h3>DevOps Intern</h3>
		<span class="company">Initech</span>
		<span class="location">Remote</span>
		<a href="https://board.example/42">Apply</a>
	</div>`

	jobs, err := ParseBoardHTML(html, time.Now())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Initech", jobs[0].Company)
	assert.Equal(t, "DevOps Intern", jobs[0].Position)
}

func TestFetchAll_MergesSources(t *testing.T) {
	readme := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleReadme))
	}))
	defer readme.Close()

	board := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleBoard))
	}))
	defer board.Close()

	jobs, err := FetchAll(context.Background(),
		NewGitHubSource(readme.URL),
		NewBoardSource(board.URL),
	)
	require.NoError(t, err)
	assert.Len(t, jobs, 5)
}

func TestFetchAll_SourceFailureFailsRefresh(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleReadme))
	}))
	defer ok.Close()

	_, err := FetchAll(context.Background(),
		NewGitHubSource(ok.URL),
		NewBoardSource(bad.URL),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board")
}
