package record

import (
	"context"
	"fmt"
	"sort"

	"github.com/syncline-io/syncline/metadata"
	"github.com/syncline-io/syncline/store"
)

// ComputeOptimisticRecordFromInput synthesizes the record a UI can render
// immediately for a pending mutation, resolving one-to-one relations against
// whatever the normalized cache already holds. The cache is only read, never
// written.
//
// Input keys are classified once against the object's metadata. The reserved
// type-tag key is ignored. Unknown keys are collected and rejected together
// with UnknownFieldError; this check runs before the per-relation exclusivity
// check, which rejects inputs carrying both the id form and the object form
// of one relation regardless of their values.
//
// Scalar keys and relation-id keys are copied verbatim. For each relation-id
// key the relation's object key is merged in with tri-state semantics: a nil
// id contributes an explicit nil, a cached hit contributes the entity, and a
// cache miss contributes nothing at all, leaving the object key absent.
// Object-form input keys validate but contribute nothing; the nested object
// key is only ever derived from an id the caller actually sent.
//
// Go maps carry no insertion order, so the keys inside UnknownFieldError are
// reported sorted; compare outputs structurally, never by key order.
func ComputeOptimisticRecordFromInput(ctx context.Context, objects []metadata.ObjectMetadataItem, object metadata.ObjectMetadataItem, input Input, cache store.EntityStore) (store.Entity, error) {
	classified := make(map[string]metadata.Classification, len(input))
	var unknown []string

	for key := range input {
		if key == TypeTagKey {
			continue
		}
		c := metadata.Classify(key, object)
		if c.Kind == metadata.KindUnknown {
			unknown = append(unknown, key)
			continue
		}
		classified[key] = c
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownFieldError{ObjectName: object.NameSingular, Fields: unknown}
	}

	// A relation counts as touched when either of its wire forms appears.
	touched := make(map[string]struct{})
	for _, c := range classified {
		if c.Kind == metadata.KindRelationID || c.Kind == metadata.KindRelationObject {
			touched[c.RelationField] = struct{}{}
		}
	}
	relations := make([]string, 0, len(touched))
	for name := range touched {
		relations = append(relations, name)
	}
	sort.Strings(relations)
	for _, name := range relations {
		if err := checkRelationExclusivity(input, name, name+"Id"); err != nil {
			return nil, err
		}
	}

	out := make(store.Entity, len(input))
	for key, c := range classified {
		switch c.Kind {
		case metadata.KindScalar, metadata.KindRelationID:
			out[key] = input[key]
		}
	}

	for key, c := range classified {
		if c.Kind != metadata.KindRelationID {
			continue
		}
		target, found := metadata.FindByNameSingular(objects, c.TargetType)
		if !found {
			return nil, fmt.Errorf("relation %q targets unknown object %q", c.RelationField, c.TargetType)
		}
		res, err := resolveRelation(ctx, input, key, target, cache)
		if err != nil {
			return nil, err
		}
		switch res.state {
		case resolveNull:
			out[c.RelationField] = nil
		case resolveEntity:
			out[c.RelationField] = res.entity
		}
	}

	return out, nil
}
