package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type entityKey struct {
	typeName string
	id       string
}

// MemoryStore implements an in-memory entity store. Entities are deep-copied
// on both write and read, so no caller can mutate cache-internal state.
type MemoryStore struct {
	mu       sync.RWMutex
	entities map[entityKey]Entity
	logger   *zap.Logger
}

// NewMemoryStore creates an in-memory entity store.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithLogger(zap.NewNop())
}

// NewMemoryStoreWithLogger creates an in-memory entity store that logs writes
// and reads at debug level.
func NewMemoryStoreWithLogger(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		entities: make(map[entityKey]Entity),
		logger:   logger,
	}
}

// ReadEntity retrieves the entity stored under (typeName, id).
func (m *MemoryStore) ReadEntity(ctx context.Context, typeName, id string) (Entity, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	m.mu.RLock()
	entity, ok := m.entities[entityKey{typeName: typeName, id: id}]
	m.mu.RUnlock()

	if !ok {
		m.logger.Debug("entity miss",
			zap.String("type", typeName),
			zap.String("id", id))
		return nil, ErrEntityMiss{TypeName: typeName, ID: id}
	}

	return entity.Clone(), nil
}

// WriteEntity merge-upserts fields under (typeName, id). The merge happens
// under the store lock, so a write is atomic for the fields it carries.
func (m *MemoryStore) WriteEntity(ctx context.Context, typeName, id string, fields Entity) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	key := entityKey{typeName: typeName, id: id}

	m.mu.Lock()
	existing, ok := m.entities[key]
	if !ok {
		existing = make(Entity, len(fields))
		m.entities[key] = existing
	}
	for k, v := range fields.Clone() {
		existing[k] = v
	}
	m.mu.Unlock()

	m.logger.Debug("entity stored",
		zap.String("type", typeName),
		zap.String("id", id),
		zap.Int("fields", len(fields)))
	return nil
}

// DeleteEntity removes the entry stored under (typeName, id).
func (m *MemoryStore) DeleteEntity(ctx context.Context, typeName, id string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m.mu.Lock()
	delete(m.entities, entityKey{typeName: typeName, id: id})
	m.mu.Unlock()
	return nil
}

// Exists checks whether an entry is stored under (typeName, id).
func (m *MemoryStore) Exists(ctx context.Context, typeName, id string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	m.mu.RLock()
	_, ok := m.entities[entityKey{typeName: typeName, id: id}]
	m.mu.RUnlock()
	return ok, nil
}

// Clear removes every stored entity.
func (m *MemoryStore) Clear(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m.mu.Lock()
	m.entities = make(map[entityKey]Entity)
	m.mu.Unlock()
	return nil
}

// Count returns the number of stored entities.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entities)
}
