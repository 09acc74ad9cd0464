package server

import (
	"net/http"

	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

// handleListApplications returns all applications.
func (s *Server) handleListApplications(w http.ResponseWriter, _ *http.Request) {
	apps := s.store.State().Applications.Applications
	if apps == nil {
		apps = []types.Application{}
	}
	s.jsonResponse(w, http.StatusOK, apps)
}

// handleGetApplication returns one application by id.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, a := range s.store.State().Applications.Applications {
		if a.ID == id {
			s.jsonResponse(w, http.StatusOK, a)
			return
		}
	}
	s.errorResponse(w, http.StatusNotFound, "Application not found")
}

// handleListAgents returns the agent catalog.
func (s *Server) handleListAgents(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.State().Agents.Agents)
}

// handleListAgentLogs returns the global agent activity feed.
func (s *Server) handleListAgentLogs(w http.ResponseWriter, _ *http.Request) {
	logs := s.store.State().Agents.Logs
	if logs == nil {
		logs = []types.LogEntry{}
	}
	s.jsonResponse(w, http.StatusOK, logs)
}

// handleClearAgentLogs clears the activity feed and tool-call history.
func (s *Server) handleClearAgentLogs(w http.ResponseWriter, _ *http.Request) {
	s.events.Clear()
	s.store.Dispatch(store.AgentsClearLogs{})
	w.WriteHeader(http.StatusNoContent)
}
