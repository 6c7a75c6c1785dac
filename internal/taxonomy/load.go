package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/profile-matcher/internal/schemas"
)

// LoadFile reads a taxonomy definition from a JSON file, validates it
// against the embedded schema, and builds an immutable Taxonomy from it.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if err := schemas.ValidateTaxonomy(data); err != nil {
		return nil, fmt.Errorf("taxonomy file %s is invalid: %w", path, err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	return New(&def)
}
