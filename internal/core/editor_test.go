package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/domain"
	"github.com/Annany2002/schema-builder/internal/storage"
)

// seedSchema returns one of the built-in sample schemas by id.
func seedSchema(t *testing.T, id string) domain.Schema {
	t.Helper()
	schemas, err := storage.BuiltinSeed()
	require.NoError(t, err)
	for _, s := range schemas {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("seed schema %q not found", id)
	return domain.Schema{}
}

func elementIDs(s domain.Schema) []string {
	ids := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		ids[i] = e.ID
	}
	return ids
}

func newEditor() *core.Editor {
	return core.NewEditor(core.NewSequenceGenerator("t-"))
}

func TestAddElementAppendsAndAssigns(t *testing.T) {
	ed := newEditor()
	before := seedSchema(t, "schema2")
	snapshot := before.Clone()

	after, err := ed.AddElement(before, domain.Element{HTMLTag: "input", HTMLName: "phone", Type: "tel"})
	require.NoError(t, err)

	require.Len(t, after.Elements, len(before.Elements)+1)
	assert.Equal(t, before.Elements, after.Elements[:len(before.Elements)], "prior elements keep identity and order")

	added := after.Elements[len(after.Elements)-1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "5", added.ElementNr)
	assert.Equal(t, "schema2", added.SchemaID)
	assert.Equal(t, "phone", added.HTMLName)
	assert.Equal(t, "tel", added.Type)

	assert.Equal(t, snapshot, before, "input schema must not be modified")
}

func TestAddElementIgnoresCallerAssignedFields(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	after, err := ed.AddElement(s, domain.Element{ID: "elem1", ElementNr: "99", SchemaID: "other", HTMLID: "x"})
	require.NoError(t, err)

	added := after.Elements[3]
	assert.NotEqual(t, "elem1", added.ID)
	assert.Equal(t, "4", added.ElementNr)
	assert.Equal(t, "schema1", added.SchemaID)
}

func TestAddElementRequiresNameOrID(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	after, err := ed.AddElement(s, domain.Element{HTMLTag: "input", Type: "text", Class: "form-control"})
	assert.ErrorIs(t, err, core.ErrElementIdentityMissing)
	assert.Equal(t, s, after, "rejected add leaves the schema unchanged")
}

func TestAddElementIDsAreUnique(t *testing.T) {
	ed := core.NewEditor(nil)
	s := domain.Schema{ID: "draft"}

	var err error
	for i := 0; i < 50; i++ {
		s, err = ed.AddElement(s, domain.Element{HTMLName: "f"})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for _, id := range elementIDs(s) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestElementNrIsNotRenumbered(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	s = ed.RemoveElement(s, "elem1")
	assert.Equal(t, []string{"2", "3"}, []string{s.Elements[0].ElementNr, s.Elements[1].ElementNr})

	s, err := ed.AddElement(s, domain.Element{HTMLName: "remember"})
	require.NoError(t, err)
	// count+1 collides with the existing "3"; duplicates are tolerated
	assert.Equal(t, "3", s.Elements[2].ElementNr)
}

func TestRemoveElement(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema3")
	snapshot := s.Clone()

	after := ed.RemoveElement(s, "elem9")
	assert.Equal(t, []string{"elem8", "elem10", "elem11"}, elementIDs(after))
	assert.Equal(t, snapshot, s)
}

func TestRemoveUnknownElementIsNoOp(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	assert.Equal(t, s, ed.RemoveElement(s, "does-not-exist"))
}

func TestUpdateElementFieldIsolation(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")
	snapshot := s.Clone()

	after, err := ed.UpdateElementField(s, "elem2", core.FieldValue, "hunter2")
	require.NoError(t, err)

	want := s.Clone()
	want.Elements[1].Value = "hunter2"
	assert.Equal(t, want, after)
	assert.Equal(t, snapshot, s)
}

func TestUpdateElementFieldSpacingDoesNotAlias(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	after, err := ed.UpdateElementField(s, "elem1", core.FieldPaddingTop, "20px")
	require.NoError(t, err)

	assert.Equal(t, "20px", after.Elements[0].Padding.Top)
	assert.Equal(t, "12px", after.Elements[0].Padding.Right)
	assert.Equal(t, "8px", s.Elements[0].Padding.Top, "input padding untouched")

	// elem3 has no margin; setting one side creates it, clearing it removes it again
	after, err = ed.UpdateElementField(after, "elem3", core.FieldMarginLeft, "4px")
	require.NoError(t, err)
	require.NotNil(t, after.Elements[2].Margin)
	assert.Equal(t, domain.Spacing{Left: "4px"}, *after.Elements[2].Margin)

	after, err = ed.UpdateElementField(after, "elem3", core.FieldMarginLeft, "")
	require.NoError(t, err)
	assert.Nil(t, after.Elements[2].Margin)
}

func TestUpdateElementFieldValues(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	after, err := ed.UpdateElementField(s, "elem1", core.FieldMaxLength, "80")
	require.NoError(t, err)
	require.NotNil(t, after.Elements[0].MaxLength)
	assert.Equal(t, 80, *after.Elements[0].MaxLength)
	assert.Equal(t, 50, *s.Elements[0].MaxLength)

	after, err = ed.UpdateElementField(after, "elem1", core.FieldMaxLength, "")
	require.NoError(t, err)
	assert.Nil(t, after.Elements[0].MaxLength)

	after, err = ed.UpdateElementField(after, "elem1", core.FieldOnBlur, "true")
	require.NoError(t, err)
	assert.True(t, after.Elements[0].OnBlur)

	_, err = ed.UpdateElementField(s, "elem1", core.FieldSize, "-1")
	assert.ErrorIs(t, err, core.ErrInvalidFieldValue)

	_, err = ed.UpdateElementField(s, "elem1", core.FieldOnChange, "maybe")
	assert.ErrorIs(t, err, core.ErrInvalidFieldValue)
}

func TestUpdateElementFieldLabelColor(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	testCases := []struct {
		value   string
		wantErr bool
	}{
		{"#F59E0B", false},
		{"#fff", false},
		{"", false},
		{"red", true},
		{"#12345G", true},
		{"F59E0B", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			after, err := ed.UpdateElementField(s, "elem1", core.FieldLabelColor, tc.value)
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidFieldValue)
				assert.Equal(t, s, after, "rejected color leaves the schema unchanged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, after.Elements[0].LabelColor)
		})
	}
}

func TestUpdateElementFieldRejectsUnknownField(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	for _, field := range []string{"element_nr", "id", "schema_id", "padding.middle", "colour"} {
		after, err := ed.UpdateElementField(s, "elem1", core.ElementField(field), "x")
		assert.ErrorIs(t, err, core.ErrUnknownElementField, field)
		assert.Equal(t, s, after)
	}
}

func TestUpdateUnknownElementIsNoOp(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	after, err := ed.UpdateElementField(s, "nope", core.FieldValue, "x")
	require.NoError(t, err)
	assert.Equal(t, s, after)
}

func TestMoveElementBoundaries(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema4")
	first := s.Elements[0].ID
	last := s.Elements[len(s.Elements)-1].ID

	after, err := ed.MoveElement(s, first, core.DirectionUp)
	assert.ErrorIs(t, err, core.ErrMoveAtBoundary)
	assert.Equal(t, s, after)

	after, err = ed.MoveElement(s, last, core.DirectionDown)
	assert.ErrorIs(t, err, core.ErrMoveAtBoundary)
	assert.Equal(t, s, after)
}

func TestMoveElementIsASwap(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema4")

	for i := 0; i < len(s.Elements)-1; i++ {
		id := s.Elements[i].ID

		down, err := ed.MoveElement(s, id, core.DirectionDown)
		require.NoError(t, err)
		assert.Equal(t, id, down.Elements[i+1].ID)
		assert.Equal(t, s.Elements[i+1].ID, down.Elements[i].ID)

		back, err := ed.MoveElement(down, id, core.DirectionUp)
		require.NoError(t, err)
		assert.Equal(t, s, back, "down then up restores order (index %d)", i)
	}
}

func TestMoveElementUnsupportedDirections(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	for _, dir := range []core.Direction{core.DirectionLeft, core.DirectionRight, core.ParseDirection("sideways")} {
		after, err := ed.MoveElement(s, "elem2", dir)
		assert.ErrorIs(t, err, core.ErrDirectionNotSupported, string(dir))
		assert.Equal(t, s, after)
	}
}

func TestMoveUnknownElementIsNoOp(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")

	after, err := ed.MoveElement(s, "ghost", core.DirectionUp)
	require.NoError(t, err)
	assert.Equal(t, s, after)
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, core.DirectionUp, core.ParseDirection(" UP "))
	assert.Equal(t, core.DirectionDown, core.ParseDirection("down"))
	assert.Equal(t, core.DirectionLeft, core.ParseDirection("Left"))
}

func TestLoginFormScenario(t *testing.T) {
	ed := newEditor()
	s := seedSchema(t, "schema1")
	require.Len(t, s.Elements, 3)

	s, err := ed.AddElement(s, domain.Element{HTMLTag: "input", HTMLName: "remember", HTMLID: "remember-field", Type: "checkbox"})
	require.NoError(t, err)
	require.Len(t, s.Elements, 4)

	added := s.Elements[3]
	assert.Equal(t, "4", added.ElementNr)
	assert.Equal(t, "schema1", added.SchemaID)

	s, err = ed.MoveElement(s, added.ID, core.DirectionUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"elem1", "elem2", added.ID, "elem3"}, elementIDs(s))
}
