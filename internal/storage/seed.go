// internal/storage/seed.go
package storage

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/domain"
	"github.com/Annany2002/schema-builder/internal/logger"
)

var (
	customLog = logger.NewLogger()

	ErrSeedInvalid = errors.New("invalid seed data")
)

//go:embed seed_schemas.yaml
var builtinSeed []byte

type seedFile struct {
	Schemas []domain.Schema `yaml:"schemas"`
}

// BuiltinSeed returns the four sample schemas shipped with the binary.
func BuiltinSeed() ([]domain.Schema, error) {
	return ParseSeed(builtinSeed)
}

// LoadSeed reads schemas from path, or the built-in dataset when path is empty.
func LoadSeed(path string) ([]domain.Schema, error) {
	if path == "" {
		customLog.Println("Storage: Using built-in seed schemas")
		return BuiltinSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		customLog.Warnf("Storage: Failed to read seed file '%s': %v", path, err)
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	schemas, err := ParseSeed(data)
	if err != nil {
		return nil, err
	}
	customLog.Printf("Storage: Loaded %d schema(s) from '%s'", len(schemas), path)
	return schemas, nil
}

// ParseSeed decodes a YAML seed document. Unknown keys are rejected, every
// schema must be save-valid, ids must be present and unique. Elements without a
// schema_id inherit their owner's id.
func ParseSeed(data []byte) ([]domain.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	seen := make(map[string]bool, len(file.Schemas))
	for i := range file.Schemas {
		schema := &file.Schemas[i]
		if schema.ID == "" {
			return nil, fmt.Errorf("%w: schema %d has no id", ErrSeedInvalid, i+1)
		}
		if seen[schema.ID] {
			return nil, fmt.Errorf("%w: duplicate schema id '%s'", ErrSeedInvalid, schema.ID)
		}
		seen[schema.ID] = true

		if err := core.ValidateSchemaElements(*schema); err != nil {
			return nil, fmt.Errorf("%w: schema '%s': %v", ErrSeedInvalid, schema.ID, err)
		}
		for j := range schema.Elements {
			if schema.Elements[j].ID == "" {
				return nil, fmt.Errorf("%w: schema '%s' element %d has no id", ErrSeedInvalid, schema.ID, j+1)
			}
			if schema.Elements[j].SchemaID == "" {
				schema.Elements[j].SchemaID = schema.ID
			}
		}
	}
	return file.Schemas, nil
}
