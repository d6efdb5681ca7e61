package core

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new schemas and elements.
type IDGenerator interface {
	NewSchemaID() string
	NewElementID() string
}

// UUIDGenerator issues random UUID-based identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewSchemaID() string  { return "schema-" + uuid.NewString() }
func (UUIDGenerator) NewElementID() string { return "elem-" + uuid.NewString() }

// SequenceGenerator issues "<prefix>schema<N>" / "<prefix>elem<N>" from two monotonic
// counters, one per kind. Deterministic, so it suits fixtures and the offline CLI.
type SequenceGenerator struct {
	prefix   string
	schemas  atomic.Int64
	elements atomic.Int64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewSchemaID() string {
	return fmt.Sprintf("%sschema%d", g.prefix, g.schemas.Add(1))
}

func (g *SequenceGenerator) NewElementID() string {
	return fmt.Sprintf("%selem%d", g.prefix, g.elements.Add(1))
}
