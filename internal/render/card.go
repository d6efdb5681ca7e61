package render

import "github.com/Annany2002/schema-builder/internal/domain"

// Card is the summary shown for one element in the schema details view.
type Card struct {
	ElementID   string  `json:"element_id"`
	ElementNr   string  `json:"element_nr"`
	DisplayName string  `json:"display_name"`
	TypeBadge   string  `json:"type_badge"`
	BadgeClass  string  `json:"badge_class"`
	Variant     Variant `json:"variant"`
	Tag         string  `json:"html_tag,omitempty"`
	HTMLID      string  `json:"html_id,omitempty"`
	Class       string  `json:"class,omitempty"`
	Value       string  `json:"value,omitempty"`
	Padding     string  `json:"padding,omitempty"`
	Margin      string  `json:"margin,omitempty"`
	Label       string  `json:"label,omitempty"`
	LabelColor  string  `json:"labelColor,omitempty"`
}

// Cards projects every element of schema, in order.
func Cards(schema domain.Schema) []Card {
	cards := make([]Card, 0, len(schema.Elements))
	for _, e := range schema.Elements {
		badge := e.Type
		if badge == "" {
			badge = "Element"
		}
		cards = append(cards, Card{
			ElementID:   e.ID,
			ElementNr:   e.ElementNr,
			DisplayName: DisplayName(e),
			TypeBadge:   badge,
			BadgeClass:  BadgeClass(e.Type),
			Variant:     VariantOf(e),
			Tag:         e.HTMLTag,
			HTMLID:      e.HTMLID,
			Class:       e.Class,
			Value:       e.Value,
			Padding:     SpacingStyle(e.Padding),
			Margin:      SpacingStyle(e.Margin),
			Label:       e.Label,
			LabelColor:  e.LabelColor,
		})
	}
	return cards
}
