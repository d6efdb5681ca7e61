package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Annany2002/schema-builder/internal/domain"
)

// validate applies the same tag rules as request binding, so single-field
// edits accept exactly what element creation accepts.
var validate = validator.New()

// ElementField names a single editable field of an Element, using the wire (JSON) names.
// Spacing sides are addressed as "padding.top", "margin.left" and so on.
type ElementField string

const (
	FieldHTMLTag       ElementField = "html_tag"
	FieldType          ElementField = "type"
	FieldHTMLName      ElementField = "html_name"
	FieldHTMLID        ElementField = "html_id"
	FieldClass         ElementField = "class"
	FieldValue         ElementField = "value"
	FieldLabel         ElementField = "label"
	FieldLabelColor    ElementField = "labelColor"
	FieldPattern       ElementField = "pattern"
	FieldMaxLength     ElementField = "maxlength"
	FieldSize          ElementField = "size"
	FieldOnChange      ElementField = "onchange"
	FieldOnBlur        ElementField = "onblur"
	FieldPaddingTop    ElementField = "padding.top"
	FieldPaddingRight  ElementField = "padding.right"
	FieldPaddingBottom ElementField = "padding.bottom"
	FieldPaddingLeft   ElementField = "padding.left"
	FieldMarginTop     ElementField = "margin.top"
	FieldMarginRight   ElementField = "margin.right"
	FieldMarginBottom  ElementField = "margin.bottom"
	FieldMarginLeft    ElementField = "margin.left"
)

// EditableFields lists every field accepted by UpdateElementField.
// id, element_nr and schema_id are assigned by the editor and are not editable.
var EditableFields = []ElementField{
	FieldHTMLTag, FieldType, FieldHTMLName, FieldHTMLID, FieldClass, FieldValue,
	FieldLabel, FieldLabelColor, FieldPattern, FieldMaxLength, FieldSize,
	FieldOnChange, FieldOnBlur,
	FieldPaddingTop, FieldPaddingRight, FieldPaddingBottom, FieldPaddingLeft,
	FieldMarginTop, FieldMarginRight, FieldMarginBottom, FieldMarginLeft,
}

// ParseElementField resolves a field name, rejecting anything not in EditableFields.
func ParseElementField(name string) (ElementField, error) {
	for _, f := range EditableFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnknownElementField, name)
}

// setField writes value into the named field of e. e must already be a private copy.
func setField(e *domain.Element, field ElementField, value string) error {
	switch field {
	case FieldHTMLTag:
		e.HTMLTag = value
	case FieldType:
		e.Type = value
	case FieldHTMLName:
		e.HTMLName = value
	case FieldHTMLID:
		e.HTMLID = value
	case FieldClass:
		e.Class = value
	case FieldValue:
		e.Value = value
	case FieldLabel:
		e.Label = value
	case FieldLabelColor:
		if err := validate.Var(value, "omitempty,hexcolor"); err != nil {
			return fmt.Errorf("%w: %s must be a hex color such as #6366F1", ErrInvalidFieldValue, field)
		}
		e.LabelColor = value
	case FieldPattern:
		e.Pattern = value
	case FieldMaxLength:
		n, err := parseOptionalCount(field, value)
		if err != nil {
			return err
		}
		e.MaxLength = n
	case FieldSize:
		n, err := parseOptionalCount(field, value)
		if err != nil {
			return err
		}
		e.Size = n
	case FieldOnChange, FieldOnBlur:
		b := false
		if value != "" {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%w: %s must be true or false", ErrInvalidFieldValue, field)
			}
			b = parsed
		}
		if field == FieldOnChange {
			e.OnChange = b
		} else {
			e.OnBlur = b
		}
	default:
		group, side, ok := strings.Cut(string(field), ".")
		if !ok {
			return fmt.Errorf("%w: '%s'", ErrUnknownElementField, field)
		}
		switch group {
		case "padding":
			e.Padding = setSide(e.Padding, side, value)
		case "margin":
			e.Margin = setSide(e.Margin, side, value)
		default:
			return fmt.Errorf("%w: '%s'", ErrUnknownElementField, field)
		}
	}
	return nil
}

// parseOptionalCount parses a non-negative integer; an empty value clears the field.
func parseOptionalCount(field ElementField, value string) (*int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidFieldValue, field)
	}
	return &n, nil
}

// setSide returns sp with one side replaced. A spacing left with no sides becomes nil.
func setSide(sp *domain.Spacing, side, value string) *domain.Spacing {
	out := domain.Spacing{}
	if sp != nil {
		out = *sp
	}
	switch side {
	case "top":
		out.Top = value
	case "right":
		out.Right = value
	case "bottom":
		out.Bottom = value
	case "left":
		out.Left = value
	}
	if out == (domain.Spacing{}) {
		return nil
	}
	return &out
}
