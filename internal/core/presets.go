package core

import (
	"fmt"
	"strconv"

	"github.com/Annany2002/schema-builder/internal/domain"
)

// PresetKinds are the toolbar shortcuts, in toolbar order.
var PresetKinds = []string{
	"text", "textarea", "checkbox", "radio", "select",
	"button", "heading", "paragraph", "label", "file",
}

// Preset builds the partial element a toolbar shortcut adds to schema.
// html_name and html_id default to "element<N>" where N is the next element_nr.
func Preset(kind string, schema domain.Schema) (domain.Element, error) {
	nr := strconv.Itoa(len(schema.Elements) + 1)
	e := domain.Element{
		HTMLTag:   "input",
		Type:      "text",
		ElementNr: nr,
		SchemaID:  schema.ID,
		HTMLName:  "element" + nr,
		HTMLID:    "element" + nr,
		Class:     "form-control",
	}

	switch kind {
	case "text":
		e.Value, e.Label, e.LabelColor = "Text input", "Text field", "#6366F1"
	case "textarea":
		e.HTMLTag = "textarea"
		e.Value, e.Label, e.LabelColor = "Textarea content", "Text area", "#10B981"
	case "checkbox":
		e.Type = "checkbox"
		e.Value, e.Label, e.LabelColor = "checkbox value", "Checkbox", "#F59E0B"
	case "radio":
		e.Type = "radio"
		e.Value, e.Label, e.LabelColor = "radio value", "Radio button", "#8B5CF6"
	case "select":
		e.HTMLTag = "select"
		e.Value, e.Label, e.LabelColor = "Select option", "Dropdown", "#EF4444"
	case "button":
		e.HTMLTag, e.Type, e.Class = "button", "button", "btn btn-primary"
		e.Value, e.Label, e.LabelColor = "Button", "Button", "#4F46E5"
	case "heading":
		e.HTMLTag = "h2"
		e.Value, e.Label, e.LabelColor = "Heading", "Heading", "#EC4899"
	case "paragraph":
		e.HTMLTag = "p"
		e.Value, e.Label, e.LabelColor = "Paragraph text goes here", "Paragraph", "#14B8A6"
	case "label":
		e.HTMLTag = "label"
		e.Value, e.Label, e.LabelColor = "Label text", "Label", "#6366F1"
	case "file":
		e.Type = "file"
		e.Label, e.LabelColor = "File input", "#10B981"
	default:
		return domain.Element{}, fmt.Errorf("%w: '%s'", ErrUnknownPreset, kind)
	}
	return e, nil
}
