// Package store provides the normalized entity cache backing optimistic
// record computation. Entities are keyed by the composite (type name, id)
// pair; backends are interchangeable behind the EntityStore interface.
package store

import (
	"context"
	"errors"
)

// Entity is a normalized record held by the cache: a flat bag of field
// values as the server (or an optimistic write) produced them.
type Entity map[string]any

// Clone returns a deep copy of the entity. Nested maps and slices are copied
// so callers can never alias cache-internal state.
func (e Entity) Clone() Entity {
	if e == nil {
		return nil
	}
	clone := make(Entity, len(e))
	for k, v := range e {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Entity:
		return val.Clone()
	case map[string]any:
		return map[string]any(Entity(val).Clone())
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneValue(item)
		}
		return items
	default:
		return v
	}
}

// EntityStore is the interface all cache backends implement.
//
// WriteEntity is a field-level merge upsert: the given fields are merged over
// any existing entry for (typeName, id), overwriting fields present in both
// and leaving previously stored fields alone. A write is atomic with respect
// to the set of fields it carries. This is what lets a caller normalize a
// partial projection of a record without clobbering fields it did not fetch.
type EntityStore interface {
	// ReadEntity retrieves the entity stored under (typeName, id). A missing
	// entity is a normal outcome and returns ErrEntityMiss.
	ReadEntity(ctx context.Context, typeName, id string) (Entity, error)

	// WriteEntity merge-upserts fields under (typeName, id).
	WriteEntity(ctx context.Context, typeName, id string, fields Entity) error

	// DeleteEntity removes the entry stored under (typeName, id).
	DeleteEntity(ctx context.Context, typeName, id string) error

	// Exists checks whether an entry is stored under (typeName, id).
	Exists(ctx context.Context, typeName, id string) (bool, error)

	// Clear removes every stored entity.
	Clear(ctx context.Context) error
}

// ErrEntityMiss is returned when no entity is stored under a (type, id) key.
type ErrEntityMiss struct {
	TypeName string
	ID       string
}

func (e ErrEntityMiss) Error() string {
	return "entity miss: " + e.TypeName + ":" + e.ID
}

// IsEntityMiss checks if an error is an entity miss.
func IsEntityMiss(err error) bool {
	var miss ErrEntityMiss
	return errors.As(err, &miss)
}
