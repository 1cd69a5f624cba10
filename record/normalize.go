package record

import (
	"context"
	"fmt"

	"github.com/syncline-io/syncline/metadata"
	"github.com/syncline-io/syncline/store"
)

// UpdateRecordFromCache writes a record's declared fields into the normalized
// cache under (object.NameSingular, record id), merging over any prior entry.
// Calling it twice with the same record yields the same stored state.
//
// Only fields declared on the passed object's field list are written, so a
// caller holding a partial projection (say, only the id) can filter the field
// list and normalize without clobbering fields it did not fetch.
//
// Relation objects nested in the record are normalized recursively into their
// own (type, id) entries; the parent keeps a RefKey marker in their place.
// Every stored entity is stamped with its type tag.
func UpdateRecordFromCache(ctx context.Context, objects []metadata.ObjectMetadataItem, object metadata.ObjectMetadataItem, rec store.Entity, cache store.EntityStore) error {
	rawID, ok := rec["id"]
	if !ok || rawID == nil {
		return fmt.Errorf("%w: object %q", ErrMissingRecordID, object.NameSingular)
	}
	id := idValue(rawID)

	fields := store.Entity{TypeTagKey: object.TypeTag()}

	for _, field := range object.Fields {
		value, present := rec[field.Name]
		if !present {
			continue
		}

		if field.IsRelation() && value != nil {
			nested, isEntity := asEntity(value)
			if isEntity {
				target, found := metadata.FindByNameSingular(objects, field.RelationTarget)
				if !found {
					return fmt.Errorf("relation %q targets unknown object %q", field.Name, field.RelationTarget)
				}
				if err := UpdateRecordFromCache(ctx, objects, target, nested, cache); err != nil {
					return err
				}
				fields[field.Name] = store.Entity{
					RefKey: target.NameSingular + ":" + idValue(nested["id"]),
				}
				continue
			}
		}

		fields[field.Name] = value
	}

	return cache.WriteEntity(ctx, object.NameSingular, id, fields)
}

func asEntity(value any) (store.Entity, bool) {
	switch v := value.(type) {
	case store.Entity:
		return v, true
	case map[string]any:
		return store.Entity(v), true
	default:
		return nil, false
	}
}
