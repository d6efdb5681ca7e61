// Package render projects Elements into display form: a closed set of
// variants, style strings and an HTML preview of a whole schema.
package render

import (
	"regexp"

	"github.com/Annany2002/schema-builder/internal/domain"
)

// Variant is the display kind chosen for an element.
type Variant string

const (
	VariantTextInput Variant = "input"
	VariantCheckbox  Variant = "checkbox"
	VariantRadio     Variant = "radio"
	VariantButton    Variant = "button"
	VariantSelect    Variant = "select"
	VariantTextarea  Variant = "textarea"
	VariantLabel     Variant = "label"
	VariantHeading   Variant = "heading"
	VariantParagraph Variant = "paragraph"
	VariantGeneric   Variant = "generic"
)

var headingTag = regexp.MustCompile(`^h[1-6]$`)

// VariantOf maps an element to its variant. It is total: anything not
// recognised falls back to VariantGeneric.
func VariantOf(e domain.Element) Variant {
	switch {
	case e.HTMLTag == "input":
		switch e.Type {
		case "checkbox":
			return VariantCheckbox
		case "radio":
			return VariantRadio
		default:
			return VariantTextInput
		}
	case e.HTMLTag == "button" || e.Type == "submit":
		return VariantButton
	case e.HTMLTag == "select":
		return VariantSelect
	case e.HTMLTag == "textarea":
		return VariantTextarea
	case e.HTMLTag == "label":
		return VariantLabel
	case headingTag.MatchString(e.HTMLTag):
		return VariantHeading
	case e.HTMLTag == "p":
		return VariantParagraph
	default:
		return VariantGeneric
	}
}

// DisplayName is html_name, else html_id, else "Element <nr>".
func DisplayName(e domain.Element) string {
	if e.HTMLName != "" {
		return e.HTMLName
	}
	if e.HTMLID != "" {
		return e.HTMLID
	}
	return "Element " + e.ElementNr
}

// BadgeClass picks the type badge styling shown on element cards.
func BadgeClass(elementType string) string {
	switch elementType {
	case "text":
		return "badge-text"
	case "password":
		return "badge-password"
	case "email":
		return "badge-email"
	case "submit":
		return "badge-submit"
	default:
		return "badge-default"
	}
}

// SpacingStyle formats a spacing as "top right bottom left", missing sides as 0.
// A nil spacing yields "".
func SpacingStyle(sp *domain.Spacing) string {
	if sp == nil {
		return ""
	}
	return orZero(sp.Top) + " " + orZero(sp.Right) + " " + orZero(sp.Bottom) + " " + orZero(sp.Left)
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
