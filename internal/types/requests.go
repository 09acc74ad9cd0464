package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateJobRequest represents the request to add a manually entered job.
type CreateJobRequest struct {
	Company  string   `json:"company" validate:"required,min=1"`
	Position string   `json:"position" validate:"required,min=1"`
	Location string   `json:"location,omitempty"`
	URL      string   `json:"url" validate:"required,url"`
	Keywords []string `json:"keywords,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreatePresetRequest represents the request to create a preset.
type CreatePresetRequest struct {
	Kind        PresetKind `json:"kind" validate:"required,oneof=resume coverLetter template"`
	Name        string     `json:"name" validate:"required,min=1"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content" validate:"required,min=1"`
	Skills      []string   `json:"skills,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Validate validates the CreatePresetRequest using the validator.
func (r *CreatePresetRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdatePresetRequest represents a partial preset edit.
type UpdatePresetRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty" validate:"omitempty,min=1"`
	Skills      *[]string `json:"skills,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// Validate validates the UpdatePresetRequest using the validator.
func (r *UpdatePresetRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Patch converts the request into a PresetPatch.
func (r *UpdatePresetRequest) Patch() PresetPatch {
	return PresetPatch{
		Name:        r.Name,
		Description: r.Description,
		Content:     r.Content,
		Skills:      r.Skills,
		Tags:        r.Tags,
	}
}
