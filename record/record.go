// Package record synthesizes optimistic records from partial mutation inputs
// and reconciles authoritative records into the normalized entity cache.
// Object shapes come from runtime metadata, never from static Go types.
package record

import (
	"github.com/google/uuid"

	"github.com/syncline-io/syncline/store"
)

// TypeTagKey is the reserved passthrough key marking an entity's type on the
// wire. It is ignored by input validation and never copied into an optimistic
// record; the normalizer stamps it on every stored entity.
const TypeTagKey = "__typename"

// RefKey marks a stored field value as a reference to another normalized
// entity, written as "<type>:<id>".
const RefKey = "__ref"

// Input is the untyped field bag a caller submits when requesting a mutation.
type Input = store.Entity

// NewOptimisticID returns a fresh id for an optimistically created record,
// generated client-side so the record can enter the cache before the server
// confirms the create.
func NewOptimisticID() string {
	return uuid.NewString()
}
