package types

import "time"

// Preset is a reusable resume or cover-letter template. Content may contain
// {{company}}, {{position}} and {{location}} substitution placeholders.
type Preset struct {
	ID          string     `json:"id"`
	Kind        PresetKind `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content"`
	Skills      []string   `json:"skills"`
	UsageCount  int        `json:"usage_count"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Tags        []string   `json:"tags,omitempty"`
}

// PresetPatch describes a partial update to a preset.
type PresetPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// Apply returns a copy of the preset with the patch merged in.
func (p PresetPatch) Apply(pr Preset) Preset {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Content != nil {
		pr.Content = *p.Content
	}
	if p.Skills != nil {
		pr.Skills = *p.Skills
	}
	if p.Tags != nil {
		pr.Tags = *p.Tags
	}
	return pr
}
