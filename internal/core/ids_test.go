package core

import (
	"strings"
	"testing"
)

func TestSequenceGeneratorCountsKindsSeparately(t *testing.T) {
	g := NewSequenceGenerator("t-")

	got := []string{
		g.NewSchemaID(),
		g.NewElementID(),
		g.NewElementID(),
		g.NewSchemaID(),
		g.NewElementID(),
	}
	want := []string{"t-schema1", "t-elem1", "t-elem2", "t-schema2", "t-elem3"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestUUIDGeneratorPrefixes(t *testing.T) {
	var g UUIDGenerator
	if id := g.NewSchemaID(); !strings.HasPrefix(id, "schema-") {
		t.Errorf("NewSchemaID() = %q; want schema- prefix", id)
	}
	a, b := g.NewElementID(), g.NewElementID()
	if !strings.HasPrefix(a, "elem-") || a == b {
		t.Errorf("NewElementID() = %q, %q; want distinct elem- ids", a, b)
	}
}
