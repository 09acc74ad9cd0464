// Package server provides the HTTP REST API for the job autopilot.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/job-autopilot/internal/agentlog"
	"github.com/jonathan/job-autopilot/internal/agents"
	"github.com/jonathan/job-autopilot/internal/ingest"
	"github.com/jonathan/job-autopilot/internal/pipeline"
	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

// Config holds server configuration.
type Config struct {
	Port          int
	ListingURL    string
	BoardURL      string
	FailureRate   float64
	Seed          int64
	RetryAttempts int
	FastDelays    bool
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	sources    []ingest.Source

	// events is the append-only activity feed. Every pipeline log entry
	// passes through it for monotonic timestamp normalization before being
	// published into the store.
	events *agentlog.Log

	submitter agents.Submitter
	retry     pipeline.RetryPolicy
	delay     agents.Delay
}

// New creates a new server instance around the given store.
func New(cfg Config, st *store.Store) *Server {
	s := &Server{store: st}
	s.events = agentlog.New(func(entry types.LogEntry) {
		st.Dispatch(store.AgentsAddLog{Entry: entry})
	})

	if cfg.FailureRate <= 0 {
		cfg.FailureRate = agents.DefaultFailureRate
	}
	if cfg.Seed != 0 {
		s.submitter = agents.NewSeededSubmitter(cfg.FailureRate, cfg.Seed)
	} else {
		s.submitter = agents.NewSimulatedSubmitter(cfg.FailureRate)
	}

	if cfg.RetryAttempts > 1 {
		s.retry = pipeline.FixedBackoff(cfg.RetryAttempts, time.Second)
	} else {
		s.retry = pipeline.NoRetries()
	}

	if cfg.FastDelays {
		s.delay = agents.NoDelay
	} else {
		s.delay = agents.SleepDelay
	}

	s.sources = append(s.sources, ingest.NewGitHubSource(cfg.ListingURL))
	if cfg.BoardURL != "" {
		s.sources = append(s.sources, ingest.NewBoardSource(cfg.BoardURL))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)
	mux.HandleFunc("POST /jobs/refresh", s.handleRefreshJobs)
	mux.HandleFunc("POST /jobs/{id}/apply", s.handleApply)
	mux.HandleFunc("POST /jobs/{id}/apply/stream", s.handleApplyStream)

	mux.HandleFunc("GET /presets", s.handleListPresets)
	mux.HandleFunc("POST /presets", s.handleCreatePreset)
	mux.HandleFunc("PUT /presets/{id}", s.handleUpdatePreset)
	mux.HandleFunc("DELETE /presets/{id}", s.handleDeletePreset)

	mux.HandleFunc("GET /applications", s.handleListApplications)
	mux.HandleFunc("GET /applications/{id}", s.handleGetApplication)

	mux.HandleFunc("GET /agents", s.handleListAgents)
	mux.HandleFunc("GET /agents/logs", s.handleListAgentLogs)
	mux.HandleFunc("POST /agents/logs/clear", s.handleClearAgentLogs)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for pipeline runs
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
