package record

import (
	"context"
	"fmt"

	"github.com/syncline-io/syncline/metadata"
	"github.com/syncline-io/syncline/store"
)

// resolutionState encodes the three observable outcomes of resolving a
// relation id against the cache. "No contribution" and "contribute nil" are
// distinct: an omitted key tells the UI the object is not known yet, a nil
// value tells it the relation was explicitly cleared.
type resolutionState int

const (
	resolveNothing resolutionState = iota
	resolveNull
	resolveEntity
)

type resolution struct {
	state  resolutionState
	entity store.Entity
}

// checkRelationExclusivity rejects inputs carrying both wire forms of the
// same relation. Presence alone decides; an explicit nil value still counts
// as present.
func checkRelationExclusivity(input Input, objectField, idField string) error {
	_, hasID := input[idField]
	_, hasObject := input[objectField]
	if hasID && hasObject {
		return &AmbiguousRelationInputError{IDField: idField, ObjectField: objectField}
	}
	return nil
}

// resolveRelation turns an id-form input value into its tri-state cache
// outcome. A cache miss is a normal result, not an error: the referenced
// entity simply has not been fetched yet.
func resolveRelation(ctx context.Context, input Input, idField string, target metadata.ObjectMetadataItem, cache store.EntityStore) (resolution, error) {
	raw, ok := input[idField]
	if !ok {
		return resolution{state: resolveNothing}, nil
	}
	if raw == nil {
		return resolution{state: resolveNull}, nil
	}

	entity, err := cache.ReadEntity(ctx, target.NameSingular, idValue(raw))
	if err != nil {
		if store.IsEntityMiss(err) {
			return resolution{state: resolveNothing}, nil
		}
		return resolution{}, err
	}
	return resolution{state: resolveEntity, entity: entity}, nil
}

// idValue renders a record id for use as a cache key. Ids are strings on the
// wire but the input bag is untyped.
func idValue(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
