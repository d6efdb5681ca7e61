// internal/storage/schema_store.go
package storage

import (
	"errors"
	"sync"

	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/domain"
)

// Specific errors for schema store lookups
var (
	ErrSchemaNotFound = errors.New("schema not found")
)

// SchemaStore owns the schema list (in insertion order) and the active schema id.
// All operations run under one mutex so each is a single atomic step; values
// handed in or out are deep copies, so callers never share the store's slices.
type SchemaStore struct {
	mu       sync.RWMutex
	schemas  []domain.Schema
	activeID string
}

// NewSchemaStore seeds a store. The first seeded schema becomes active.
func NewSchemaStore(seed []domain.Schema) *SchemaStore {
	s := &SchemaStore{schemas: make([]domain.Schema, 0, len(seed))}
	for _, schema := range seed {
		s.schemas = append(s.schemas, schema.Clone())
	}
	if len(s.schemas) > 0 {
		s.activeID = s.schemas[0].ID
	}
	return s
}

func (s *SchemaStore) indexOf(id string) int {
	for i, schema := range s.schemas {
		if schema.ID == id {
			return i
		}
	}
	return -1
}

// List returns summaries of schemas whose name contains filter (case-insensitive), in store order.
func (s *SchemaStore) List(filter string) []domain.SchemaSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SchemaSummary, 0, len(s.schemas))
	for _, schema := range s.schemas {
		if core.MatchesFilter(schema.Name, filter) {
			out = append(out, schema.Summary())
		}
	}
	return out
}

// Names returns every schema name in store order.
func (s *SchemaStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.schemas))
	for _, schema := range s.schemas {
		names = append(names, schema.Name)
	}
	return names
}

// Count returns the number of schemas.
func (s *SchemaStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schemas)
}

// Get returns a copy of the schema with the given id.
func (s *SchemaStore) Get(id string) (domain.Schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.schemas[i].Clone(), true
	}
	return domain.Schema{}, false
}

// FindByName returns the first schema whose name matches exactly.
func (s *SchemaStore) FindByName(name string) (domain.Schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, schema := range s.schemas {
		if schema.Name == name {
			return schema.Clone(), true
		}
	}
	return domain.Schema{}, false
}

// Select makes id the active schema. An unknown id leaves no schema active.
func (s *SchemaStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		s.activeID = ""
		return
	}
	s.activeID = id
}

// ActiveID returns the active schema id, or "" when none is active.
func (s *SchemaStore) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Active returns a copy of the active schema, if any.
func (s *SchemaStore) Active() (domain.Schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeID == "" {
		return domain.Schema{}, false
	}
	if i := s.indexOf(s.activeID); i >= 0 {
		return s.schemas[i].Clone(), true
	}
	return domain.Schema{}, false
}

// Create appends schema and makes it active. Callers validate beforehand.
func (s *SchemaStore) Create(schema domain.Schema) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schemas = append(s.schemas, schema.Clone())
	s.activeID = schema.ID
}

// Update replaces the schema with the same id. It reports whether a schema
// was replaced; an unknown id is silently ignored.
func (s *SchemaStore) Update(schema domain.Schema) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replace(schema)
}

// replace swaps in a copy of schema at the slot with the same id. Callers hold the write lock.
func (s *SchemaStore) replace(schema domain.Schema) bool {
	i := s.indexOf(schema.ID)
	if i < 0 {
		return false
	}
	s.schemas[i] = schema.Clone()
	return true
}

// Delete removes the schema with the given id. If it was active, the first
// remaining schema becomes active, or none when the store is empty.
func (s *SchemaStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.schemas = append(s.schemas[:i:i], s.schemas[i+1:]...)

	if s.activeID == id {
		s.activeID = ""
		if len(s.schemas) > 0 {
			s.activeID = s.schemas[0].ID
		}
	}
}

// Modify runs fn against the current value of schema id and stores the result,
// all under the store lock, so concurrent element edits cannot overwrite each
// other. fn errors leave the store unchanged. Returns ErrSchemaNotFound for unknown ids.
func (s *SchemaStore) Modify(id string, fn func(domain.Schema) (domain.Schema, error)) (domain.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Schema{}, ErrSchemaNotFound
	}

	updated, err := fn(s.schemas[i].Clone())
	if err != nil {
		return domain.Schema{}, err
	}
	// The editor never changes identity; keep the slot keyed by id.
	updated.ID = id
	s.replace(updated)
	return updated, nil
}
