package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

// handleListPresets returns all presets.
func (s *Server) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	presets := s.store.State().Presets.Presets
	if presets == nil {
		presets = []types.Preset{}
	}
	s.jsonResponse(w, http.StatusOK, presets)
}

// handleCreatePreset adds a preset.
func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	preset := types.Preset{
		ID:          fmt.Sprintf("preset-%s", uuid.New().String()),
		Kind:        req.Kind,
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Skills:      skills,
		CreatedAt:   time.Now(),
		Tags:        req.Tags,
	}

	s.store.Dispatch(store.PresetsAdd{Preset: preset})
	s.jsonResponse(w, http.StatusCreated, preset)
}

// handleUpdatePreset applies a partial edit to a preset.
func (s *Server) handleUpdatePreset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.findPreset(id); !ok {
		s.errorResponse(w, http.StatusNotFound, "Preset not found")
		return
	}

	var req types.UpdatePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.store.Dispatch(store.PresetsUpdate{ID: id, Patch: req.Patch()})

	updated, _ := s.findPreset(id)
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeletePreset removes a preset.
func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.findPreset(id); !ok {
		s.errorResponse(w, http.StatusNotFound, "Preset not found")
		return
	}
	s.store.Dispatch(store.PresetsDelete{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) findPreset(id string) (types.Preset, bool) {
	for _, p := range s.store.State().Presets.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return types.Preset{}, false
}
