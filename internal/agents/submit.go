package agents

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// ErrSubmissionRejected is the simulated submission-channel failure. A real
// submitter replaces it with actual network, validation or auth errors.
var ErrSubmissionRejected = errors.New("failed to submit application: form validation error")

// Submitter is the external submission channel. It may fail for reasons
// outside this system's control; the pipeline treats any error as a stage
// failure. On success it returns a confirmation code.
type Submitter interface {
	Submit(ctx context.Context, app types.Application, job types.Job) (string, error)
}

// DefaultFailureRate is the simulated baseline probability of a submission
// being rejected.
const DefaultFailureRate = 0.1

// SimulatedSubmitter fails with a fixed probability and otherwise returns a
// generated confirmation code. The random source is injected so tests and
// deterministic runs can pin the outcome.
type SimulatedSubmitter struct {
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSubmitter creates a simulated submitter with the given failure
// probability, seeded from the current time.
func NewSimulatedSubmitter(failureRate float64) *SimulatedSubmitter {
	return NewSeededSubmitter(failureRate, time.Now().UnixNano())
}

// NewSeededSubmitter creates a simulated submitter with a fixed seed.
func NewSeededSubmitter(failureRate float64, seed int64) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Submit flips the weighted coin.
func (s *SimulatedSubmitter) Submit(_ context.Context, _ types.Application, _ types.Job) (string, error) {
	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll < s.FailureRate {
		return "", ErrSubmissionRejected
	}
	return ConfirmationCode(time.Now()), nil
}

// ConfirmationCode derives a confirmation code from a timestamp.
func ConfirmationCode(t time.Time) string {
	return "CONF-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// SubmitApplication drives the submission channel for a finalized draft:
// navigate, fill, upload, submit. Returns the confirmation code on success.
func SubmitApplication(ctx context.Context, app types.Application, job types.Job, submitter Submitter, sink LogSink, delay Delay) (string, error) {
	emit(sink, types.NewLogEntry(AgentApplicationAgent, types.LogThought,
		fmt.Sprintf("Navigating to %s", job.URL), app.ID))

	if err := delay(ctx, 2*time.Second); err != nil {
		return "", err
	}

	emit(sink, types.NewLogEntry(AgentApplicationAgent, types.LogToolCall,
		"Filling application form", app.ID))

	if err := delay(ctx, 3*time.Second); err != nil {
		return "", err
	}

	emit(sink, types.NewLogEntry(AgentApplicationAgent, types.LogToolCall,
		"Uploading resume and cover letter", app.ID))

	if err := delay(ctx, 2*time.Second); err != nil {
		return "", err
	}

	confirmation, err := submitter.Submit(ctx, app, job)
	if err != nil {
		emit(sink, types.NewLogEntry(AgentApplicationAgent, types.LogError, err.Error(), app.ID))
		return "", err
	}

	emit(sink, types.NewLogEntry(AgentApplicationAgent, types.LogSuccess,
		fmt.Sprintf("Application submitted successfully! Confirmation: %s", confirmation), app.ID))

	return confirmation, nil
}
