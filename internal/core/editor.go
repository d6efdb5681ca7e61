// internal/core/editor.go
package core

import (
	"fmt"
	"strconv"

	"github.com/Annany2002/schema-builder/internal/domain"
)

// Editor applies element-list mutations to one schema at a time.
// Every method takes a Schema value and returns a new one; the input,
// including its element slice and nested spacing values, is never modified.
type Editor struct {
	ids IDGenerator
}

// NewEditor creates an Editor. A nil generator falls back to UUIDGenerator.
func NewEditor(ids IDGenerator) *Editor {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Editor{ids: ids}
}

// NewSchemaDraft returns an empty, unsaved schema with a fresh id.
func (ed *Editor) NewSchemaDraft() domain.Schema {
	return domain.Schema{ID: ed.ids.NewSchemaID(), Elements: []domain.Element{}}
}

// AddElement appends partial to the schema. It assigns a new id, sets
// element_nr to the current element count plus one and points schema_id at
// the owning schema. Any id, element_nr or schema_id on partial is ignored.
func (ed *Editor) AddElement(schema domain.Schema, partial domain.Element) (domain.Schema, error) {
	if err := ValidateNewElement(partial); err != nil {
		return schema, err
	}

	element := partial.Clone()
	element.ID = ed.ids.NewElementID()
	element.ElementNr = strconv.Itoa(len(schema.Elements) + 1)
	element.SchemaID = schema.ID

	out := schema.Clone()
	out.Elements = append(out.Elements, element)
	return out, nil
}

// RemoveElement drops the element with the given id. Unknown ids leave the
// list as is. Remaining element_nr values are not renumbered.
func (ed *Editor) RemoveElement(schema domain.Schema, elementID string) domain.Schema {
	out := schema.Clone()
	if schema.IndexOf(elementID) < 0 {
		return out
	}
	kept := make([]domain.Element, 0, len(out.Elements)-1)
	for _, e := range out.Elements {
		if e.ID != elementID {
			kept = append(kept, e)
		}
	}
	out.Elements = kept
	return out
}

// UpdateElementField replaces one field on one element. An unknown element id
// is a no-op; an unknown field or an unparsable value is rejected.
func (ed *Editor) UpdateElementField(schema domain.Schema, elementID string, field ElementField, value string) (domain.Schema, error) {
	if _, err := ParseElementField(string(field)); err != nil {
		return schema, err
	}

	idx := schema.IndexOf(elementID)
	if idx < 0 {
		return schema.Clone(), nil
	}

	out := schema.Clone()
	if err := setField(&out.Elements[idx], field, value); err != nil {
		return schema, err
	}
	return out, nil
}

// MoveElement swaps the element with its neighbour in the given direction.
// Moving past either end returns ErrMoveAtBoundary and never wraps; left and
// right return ErrDirectionNotSupported. An unknown element id is a no-op.
func (ed *Editor) MoveElement(schema domain.Schema, elementID string, dir Direction) (domain.Schema, error) {
	delta, ok := dir.offset()
	if !ok {
		return schema, fmt.Errorf("%w: '%s'", ErrDirectionNotSupported, dir)
	}

	idx := schema.IndexOf(elementID)
	if idx < 0 {
		return schema.Clone(), nil
	}

	target := idx + delta
	if target < 0 || target >= len(schema.Elements) {
		return schema, fmt.Errorf("%w: cannot move element '%s' %s", ErrMoveAtBoundary, elementID, dir)
	}

	out := schema.Clone()
	out.Elements[idx], out.Elements[target] = out.Elements[target], out.Elements[idx]
	return out, nil
}
