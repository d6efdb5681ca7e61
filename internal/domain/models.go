// internal/domain/models.go
package domain

// Spacing holds per-side CSS lengths (e.g. "8px"). Each side is optional.
type Spacing struct {
	Top    string `json:"top,omitempty" yaml:"top,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom string `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`
}

// Element describes one form control inside a Schema.
// ElementNr is assigned once at creation and is not renumbered afterwards.
type Element struct {
	ID         string   `json:"id" yaml:"id"`
	ElementNr  string   `json:"element_nr" yaml:"element_nr"`
	SchemaID   string   `json:"schema_id" yaml:"schema_id"`
	HTMLTag    string   `json:"html_tag,omitempty" yaml:"html_tag,omitempty"`
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	HTMLName   string   `json:"html_name,omitempty" yaml:"html_name,omitempty"`
	HTMLID     string   `json:"html_id,omitempty" yaml:"html_id,omitempty"`
	Class      string   `json:"class,omitempty" yaml:"class,omitempty"`
	Value      string   `json:"value,omitempty" yaml:"value,omitempty"`
	Label      string   `json:"label,omitempty" yaml:"label,omitempty"`
	LabelColor string   `json:"labelColor,omitempty" yaml:"labelColor,omitempty"`
	OnChange   bool     `json:"onchange,omitempty" yaml:"onchange,omitempty"`
	OnBlur     bool     `json:"onblur,omitempty" yaml:"onblur,omitempty"`
	Padding    *Spacing `json:"padding,omitempty" yaml:"padding,omitempty"`
	Margin     *Spacing `json:"margin,omitempty" yaml:"margin,omitempty"`
	MaxLength  *int     `json:"maxlength,omitempty" yaml:"maxlength,omitempty"`
	Size       *int     `json:"size,omitempty" yaml:"size,omitempty"`
	Pattern    string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Schema is a named, ordered collection of Elements (one form design).
type Schema struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Color       string    `json:"color,omitempty" yaml:"color,omitempty"`
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Elements    []Element `json:"elements" yaml:"elements"`
}

// SchemaSummary is the list projection of a Schema.
type SchemaSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
	ElementCount int    `json:"element_count"`
}

// Clone returns a deep copy of the element; pointer fields are reallocated.
func (e Element) Clone() Element {
	out := e
	if e.Padding != nil {
		p := *e.Padding
		out.Padding = &p
	}
	if e.Margin != nil {
		m := *e.Margin
		out.Margin = &m
	}
	if e.MaxLength != nil {
		v := *e.MaxLength
		out.MaxLength = &v
	}
	if e.Size != nil {
		v := *e.Size
		out.Size = &v
	}
	return out
}

// Clone returns a deep copy of the schema including its element list.
func (s Schema) Clone() Schema {
	out := s
	if s.Elements == nil {
		return out
	}
	out.Elements = make([]Element, len(s.Elements))
	for i, e := range s.Elements {
		out.Elements[i] = e.Clone()
	}
	return out
}

// Summary projects the schema into its list form.
func (s Schema) Summary() SchemaSummary {
	return SchemaSummary{
		ID:           s.ID,
		Name:         s.Name,
		Color:        s.Color,
		Category:     s.Category,
		Description:  s.Description,
		ElementCount: len(s.Elements),
	}
}

// IndexOf returns the position of the element with the given id, or -1.
func (s Schema) IndexOf(elementID string) int {
	for i, e := range s.Elements {
		if e.ID == elementID {
			return i
		}
	}
	return -1
}
