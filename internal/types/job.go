package types

import "time"

// Requirements holds the skill profile extracted from a job posting.
type Requirements struct {
	Required    []string `json:"required"`
	Preferred   []string `json:"preferred"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description,omitempty"`
}

// Job represents a tracked job posting.
type Job struct {
	ID           string       `json:"id"`
	Company      string       `json:"company"`
	Position     string       `json:"position"`
	Location     string       `json:"location"`
	URL          string       `json:"url"`
	Source       JobSource    `json:"source"`
	PostedDate   time.Time    `json:"posted_date"`
	ScrapedDate  time.Time    `json:"scraped_date"`
	Requirements Requirements `json:"requirements"`
	MatchScore   *float64     `json:"match_score,omitempty"`
	Status       JobStatus    `json:"status"`
	Tags         []string     `json:"tags,omitempty"`
}

// JobPatch describes a partial update to a job. Nil fields are left unchanged.
type JobPatch struct {
	Company      *string       `json:"company,omitempty"`
	Position     *string       `json:"position,omitempty"`
	Location     *string       `json:"location,omitempty"`
	URL          *string       `json:"url,omitempty"`
	Requirements *Requirements `json:"requirements,omitempty"`
	MatchScore   *float64      `json:"match_score,omitempty"`
	Status       *JobStatus    `json:"status,omitempty"`
	Tags         *[]string     `json:"tags,omitempty"`
}

// Apply returns a copy of the job with the patch merged in.
func (p JobPatch) Apply(j Job) Job {
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Position != nil {
		j.Position = *p.Position
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.URL != nil {
		j.URL = *p.URL
	}
	if p.Requirements != nil {
		j.Requirements = *p.Requirements
	}
	if p.MatchScore != nil {
		j.MatchScore = p.MatchScore
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.Tags != nil {
		j.Tags = *p.Tags
	}
	return j
}

// Filter narrows the job list shown to the UI.
type Filter struct {
	Search        string      `json:"search,omitempty"`
	Locations     []string    `json:"locations,omitempty"`
	Skills        []string    `json:"skills,omitempty"`
	Companies     []string    `json:"companies,omitempty"`
	Statuses      []JobStatus `json:"statuses,omitempty"`
	MatchScoreMin float64     `json:"match_score_min,omitempty"`
}
