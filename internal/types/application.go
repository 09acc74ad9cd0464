package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Step is the per-application record tracking one pipeline stage.
type Step struct {
	Name      PipelineStage `json:"name"`
	Status    StepStatus    `json:"status"`
	Output    any           `json:"output,omitempty"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Retries   int           `json:"retries"`
}

// StepPatch describes a partial update to a step.
type StepPatch struct {
	Status    *StepStatus    `json:"status,omitempty"`
	Output    any            `json:"output,omitempty"`
	Error     *string        `json:"error,omitempty"`
	StartedAt *time.Time     `json:"started_at,omitempty"`
	Duration  *time.Duration `json:"duration,omitempty"`
	Retries   *int           `json:"retries,omitempty"`
}

// Apply returns a copy of the step with the patch merged in.
func (p StepPatch) Apply(s Step) Step {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Output != nil {
		s.Output = p.Output
	}
	if p.Error != nil {
		s.Error = *p.Error
	}
	if p.StartedAt != nil {
		s.StartedAt = *p.StartedAt
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Retries != nil {
		s.Retries = *p.Retries
	}
	return s
}

// Application is the per-job pipeline execution record. A job may accumulate
// multiple applications across re-runs; each pipeline run produces exactly one.
type Application struct {
	ID              string        `json:"id"`
	JobID           string        `json:"job_id"`
	Status          JobStatus     `json:"status"`
	CurrentStage    PipelineStage `json:"current_stage"`
	Steps           []Step        `json:"steps"`
	ResumeUsed      string        `json:"resume_used,omitempty"`
	CoverLetterUsed string        `json:"cover_letter_used,omitempty"`
	Customizations  []string      `json:"customizations"`
	SubmittedAt     *time.Time    `json:"submitted_at,omitempty"`
	ConfirmationID  string        `json:"confirmation_id,omitempty"`
	Logs            []LogEntry    `json:"logs"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewApplication creates an application for the given job with all five
// steps pending.
func NewApplication(jobID string, now time.Time) Application {
	steps := make([]Step, 0, len(Stages()))
	for _, stage := range Stages() {
		steps = append(steps, Step{Name: stage, Status: StepStatusPending, StartedAt: now})
	}
	return Application{
		ID:             fmt.Sprintf("app-%s", uuid.New().String()),
		JobID:          jobID,
		Status:         JobStatusAnalyzing,
		CurrentStage:   StageAnalyze,
		Steps:          steps,
		Customizations: []string{},
		Logs:           []LogEntry{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Step returns a pointer to the step for the given stage, or nil.
func (a *Application) Step(stage PipelineStage) *Step {
	for i := range a.Steps {
		if a.Steps[i].Name == stage {
			return &a.Steps[i]
		}
	}
	return nil
}

// ApplicationPatch describes a partial update to an application.
type ApplicationPatch struct {
	Status          *JobStatus     `json:"status,omitempty"`
	CurrentStage    *PipelineStage `json:"current_stage,omitempty"`
	ResumeUsed      *string        `json:"resume_used,omitempty"`
	CoverLetterUsed *string        `json:"cover_letter_used,omitempty"`
	Customizations  *[]string      `json:"customizations,omitempty"`
	SubmittedAt     *time.Time     `json:"submitted_at,omitempty"`
	ConfirmationID  *string        `json:"confirmation_id,omitempty"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

// Apply returns a copy of the application with the patch merged in.
func (p ApplicationPatch) Apply(a Application) Application {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.CurrentStage != nil {
		a.CurrentStage = *p.CurrentStage
	}
	if p.ResumeUsed != nil {
		a.ResumeUsed = *p.ResumeUsed
	}
	if p.CoverLetterUsed != nil {
		a.CoverLetterUsed = *p.CoverLetterUsed
	}
	if p.Customizations != nil {
		a.Customizations = *p.Customizations
	}
	if p.SubmittedAt != nil {
		a.SubmittedAt = p.SubmittedAt
	}
	if p.ConfirmationID != nil {
		a.ConfirmationID = *p.ConfirmationID
	}
	if p.UpdatedAt != nil {
		a.UpdatedAt = *p.UpdatedAt
	}
	return a
}
