package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ParseItems decodes a JSON array of object metadata items, validating that
// every item has a singular name, every field has a name, and relation targets
// resolve to another item in the same collection.
func ParseItems(r io.Reader) ([]ObjectMetadataItem, error) {
	var items []ObjectMetadataItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode object metadata: %w", err)
	}

	for _, item := range items {
		if item.NameSingular == "" {
			return nil, fmt.Errorf("object metadata item has no singular name")
		}
		for _, field := range item.Fields {
			if field.Name == "" {
				return nil, fmt.Errorf("object %q declares a field with no name", item.NameSingular)
			}
			if field.IsRelation() {
				if _, ok := FindByNameSingular(items, field.RelationTarget); !ok {
					return nil, fmt.Errorf("object %q field %q targets unknown object %q",
						item.NameSingular, field.Name, field.RelationTarget)
				}
			}
		}
	}

	return items, nil
}

// LoadFile reads object metadata items from a JSON file.
func LoadFile(path string) ([]ObjectMetadataItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata file: %w", err)
	}
	defer f.Close()

	return ParseItems(f)
}
