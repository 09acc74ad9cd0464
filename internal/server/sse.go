package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/job-autopilot/internal/types"
)

// Payloads for the three event kinds a pipeline stream emits.
type stepEvent struct {
	Stage types.PipelineStage `json:"stage"`
	Step  types.Step          `json:"step"`
}

type completeEvent struct {
	ApplicationID string          `json:"application_id"`
	Status        types.JobStatus `json:"status"`
}

// SSEWriter streams pipeline progress to one client as Server-Sent Events:
// "step" per step transition, "log" per narration entry, then one "complete".
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteStep streams a step transition.
func (s *SSEWriter) WriteStep(stage types.PipelineStage, step types.Step) error {
	return s.writeEvent("step", stepEvent{Stage: stage, Step: step})
}

// WriteLog streams a narration entry.
func (s *SSEWriter) WriteLog(entry types.LogEntry) error {
	return s.writeEvent("log", entry)
}

// WriteComplete closes the stream's story with the finalized application.
func (s *SSEWriter) WriteComplete(app types.Application) error {
	return s.writeEvent("complete", completeEvent{ApplicationID: app.ID, Status: app.Status})
}

func (s *SSEWriter) writeEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
