package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/job-autopilot/internal/ingest"
	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

// handleListJobs returns all tracked jobs.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	jobs := s.store.State().Jobs.Jobs
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleCreateJob adds a manually entered job.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job := ingest.NewManualJob(req.Company, req.Position, req.Location, req.URL, time.Now())
	if len(req.Keywords) > 0 {
		job.Requirements.Keywords = append(job.Requirements.Keywords, req.Keywords...)
	}
	job.Tags = req.Tags

	s.store.Dispatch(store.JobsAdd{Job: job})
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleGetJob returns one job by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.findJob(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes a job.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.findJob(id); !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	s.store.Dispatch(store.JobsDelete{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// handleRefreshJobs re-scrapes the configured sources and replaces the job
// list.
func (s *Server) handleRefreshJobs(w http.ResponseWriter, r *http.Request) {
	s.store.Dispatch(store.JobsFetchStart{})

	ctx, cancel := context.WithTimeout(r.Context(), 2*ingest.DefaultTimeout)
	defer cancel()

	jobs, err := ingest.FetchAll(ctx, s.sources...)
	if err != nil {
		log.Printf("Job refresh failed: %v", err)
		s.store.Dispatch(store.JobsFetchError{Message: err.Error()})
		s.errorResponse(w, http.StatusBadGateway, "Refresh failed: "+err.Error())
		return
	}

	s.store.Dispatch(store.JobsFetchSuccess{Jobs: jobs, At: time.Now()})
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count": len(jobs),
	})
}

// findJob looks a job up in the current state.
func (s *Server) findJob(id string) (types.Job, bool) {
	for _, j := range s.store.State().Jobs.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return types.Job{}, false
}
