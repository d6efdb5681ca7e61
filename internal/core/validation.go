// internal/core/validation.go
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Annany2002/schema-builder/internal/domain"
)

// Validation and editing rejections. None of them mutate state; callers
// report them and let the user retry with corrected input.
var (
	ErrSchemaNameRequired     = errors.New("please provide a schema name")
	ErrSchemaHasNoElements    = errors.New("add at least one element to your schema")
	ErrElementIdentityMissing = errors.New("element needs either a name or an id")
	ErrMoveAtBoundary         = errors.New("element is already at the boundary")
	ErrDirectionNotSupported  = errors.New("move direction not supported")
	ErrUnknownElementField    = errors.New("unknown element field")
	ErrInvalidFieldValue      = errors.New("invalid value for element field")
	ErrUnknownPreset          = errors.New("unknown element preset")
	ErrInvalidQuery           = errors.New("invalid query parameter")
	ErrInvalidRequestBody     = errors.New("invalid request body")
)

// ValidateForSave checks the two save rules: a non-blank name and at least one element.
func ValidateForSave(schema domain.Schema) error {
	if strings.TrimSpace(schema.Name) == "" {
		return ErrSchemaNameRequired
	}
	if len(schema.Elements) == 0 {
		return ErrSchemaHasNoElements
	}
	return nil
}

// ValidateNewElement checks that a partial element can be identified in the
// rendered form, i.e. it carries an html name or an html id.
func ValidateNewElement(partial domain.Element) error {
	if strings.TrimSpace(partial.HTMLName) == "" && strings.TrimSpace(partial.HTMLID) == "" {
		return ErrElementIdentityMissing
	}
	return nil
}

// ValidateSchemaElements runs ValidateForSave and then checks every element's identity.
// Used when whole schemas arrive from outside (seed files, full replacement).
func ValidateSchemaElements(schema domain.Schema) error {
	if err := ValidateForSave(schema); err != nil {
		return err
	}
	seen := make(map[string]bool, len(schema.Elements))
	for i, e := range schema.Elements {
		if err := ValidateNewElement(e); err != nil {
			return fmt.Errorf("%w (element %d)", err, i+1)
		}
		if e.ID != "" {
			if seen[e.ID] {
				return fmt.Errorf("%w: duplicate element id '%s'", ErrInvalidFieldValue, e.ID)
			}
			seen[e.ID] = true
		}
	}
	return nil
}
