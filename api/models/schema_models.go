// api/models/schema_models.go
package models

import "github.com/Annany2002/schema-builder/internal/domain"

// --- Element Request Structs ---

// SpacingInput carries optional per-side spacing values
type SpacingInput struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// ElementInput is a partial element as submitted by the form builder.
// Name/id presence is checked by the editor so the rejection carries its own message.
type ElementInput struct {
	ID         string        `json:"id"`
	HTMLTag    string        `json:"html_tag" binding:"max=32"`
	Type       string        `json:"type" binding:"max=32"`
	HTMLName   string        `json:"html_name" binding:"max=128"`
	HTMLID     string        `json:"html_id" binding:"max=128"`
	Class      string        `json:"class"`
	Value      string        `json:"value"`
	Label      string        `json:"label" binding:"max=64"`
	LabelColor string        `json:"labelColor" binding:"omitempty,hexcolor"`
	OnChange   bool          `json:"onchange"`
	OnBlur     bool          `json:"onblur"`
	Padding    *SpacingInput `json:"padding"`
	Margin     *SpacingInput `json:"margin"`
	MaxLength  *int          `json:"maxlength" binding:"omitempty,min=0"`
	Size       *int          `json:"size" binding:"omitempty,min=0"`
	Pattern    string        `json:"pattern"`
}

// UpdateElementFieldRequest defines the body for a single-field element edit
type UpdateElementFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// MoveElementRequest defines the body for reordering an element.
// Any direction is accepted here; unsupported ones are rejected by the editor.
type MoveElementRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// --- Schema Request Structs ---

// SaveSchemaRequest is the body for creating or fully replacing a schema.
// Name and element count are validated by the save rules, not by binding.
type SaveSchemaRequest struct {
	Name        string         `json:"name" binding:"max=128"`
	Color       string         `json:"color" binding:"omitempty,hexcolor"`
	Category    string         `json:"category" binding:"max=64"`
	Description string         `json:"description" binding:"max=1024"`
	Elements    []ElementInput `json:"elements" binding:"dive"`
}

// SelectSchemaRequest sets the active schema; an unknown or empty id clears it
type SelectSchemaRequest struct {
	ID string `json:"id"`
}

// --- Response Structs ---

// ActiveSchemaResponse wraps the active schema, which may be absent
type ActiveSchemaResponse struct {
	ActiveID string         `json:"active_id"`
	Schema   *domain.Schema `json:"schema"`
}

// UpdateSchemaResponse reports whether a full replacement matched a stored schema
type UpdateSchemaResponse struct {
	Updated bool           `json:"updated"`
	Schema  *domain.Schema `json:"schema,omitempty"`
}

// ToDomain converts the input into a partial domain element
func (in ElementInput) ToDomain() domain.Element {
	return domain.Element{
		ID:         in.ID,
		HTMLTag:    in.HTMLTag,
		Type:       in.Type,
		HTMLName:   in.HTMLName,
		HTMLID:     in.HTMLID,
		Class:      in.Class,
		Value:      in.Value,
		Label:      in.Label,
		LabelColor: in.LabelColor,
		OnChange:   in.OnChange,
		OnBlur:     in.OnBlur,
		Padding:    in.Padding.toDomain(),
		Margin:     in.Margin.toDomain(),
		MaxLength:  in.MaxLength,
		Size:       in.Size,
		Pattern:    in.Pattern,
	}
}

func (in *SpacingInput) toDomain() *domain.Spacing {
	if in == nil {
		return nil
	}
	sp := domain.Spacing{Top: in.Top, Right: in.Right, Bottom: in.Bottom, Left: in.Left}
	if sp == (domain.Spacing{}) {
		return nil
	}
	return &sp
}
