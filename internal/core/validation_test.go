// internal/core/validation_test.go
package core

import (
	"errors"
	"testing"

	"github.com/Annany2002/schema-builder/internal/domain"
)

func TestValidateForSave(t *testing.T) {
	oneElement := []domain.Element{{ID: "e1", HTMLName: "username"}}

	testCases := []struct {
		name    string
		schema  domain.Schema
		wantErr error
		comment string
	}{
		{"valid", domain.Schema{Name: "Login Form", Elements: oneElement}, nil, ""},
		{"empty name", domain.Schema{Name: "", Elements: oneElement}, ErrSchemaNameRequired, "name missing"},
		{"blank name", domain.Schema{Name: "   \t", Elements: oneElement}, ErrSchemaNameRequired, "whitespace only"},
		{"no elements", domain.Schema{Name: "Login Form"}, ErrSchemaHasNoElements, "nil element list"},
		{"empty elements", domain.Schema{Name: "Login Form", Elements: []domain.Element{}}, ErrSchemaHasNoElements, "empty element list"},
		{"name checked first", domain.Schema{Name: ""}, ErrSchemaNameRequired, "both rules broken"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateForSave(tc.schema)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateForSave() = %v; want %v. %s", err, tc.wantErr, tc.comment)
			}
		})
	}
}

func TestValidateNewElement(t *testing.T) {
	testCases := []struct {
		name    string
		input   domain.Element
		wantErr bool
	}{
		{"name only", domain.Element{HTMLName: "email"}, false},
		{"id only", domain.Element{HTMLID: "email-field"}, false},
		{"both", domain.Element{HTMLName: "email", HTMLID: "email-field"}, false},
		{"neither", domain.Element{HTMLTag: "input", Type: "text"}, true},
		{"whitespace only", domain.Element{HTMLName: "  ", HTMLID: " "}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNewElement(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateNewElement(%+v) error = %v; wantErr %v", tc.input, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrElementIdentityMissing) {
				t.Errorf("ValidateNewElement error = %v; want ErrElementIdentityMissing", err)
			}
		})
	}
}

func TestValidateSchemaElements(t *testing.T) {
	valid := domain.Schema{Name: "Form", Elements: []domain.Element{
		{ID: "a", HTMLName: "a"},
		{ID: "b", HTMLID: "b"},
	}}
	if err := ValidateSchemaElements(valid); err != nil {
		t.Fatalf("ValidateSchemaElements(valid) = %v", err)
	}

	missing := domain.Schema{Name: "Form", Elements: []domain.Element{{ID: "a", HTMLName: "a"}, {ID: "b"}}}
	if err := ValidateSchemaElements(missing); !errors.Is(err, ErrElementIdentityMissing) {
		t.Errorf("ValidateSchemaElements(missing identity) = %v; want ErrElementIdentityMissing", err)
	}

	dup := domain.Schema{Name: "Form", Elements: []domain.Element{{ID: "a", HTMLName: "a"}, {ID: "a", HTMLName: "b"}}}
	if err := ValidateSchemaElements(dup); !errors.Is(err, ErrInvalidFieldValue) {
		t.Errorf("ValidateSchemaElements(duplicate ids) = %v; want ErrInvalidFieldValue", err)
	}
}
