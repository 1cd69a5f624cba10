package metadata

import (
	"fmt"
	"sync"
)

// Registry manages the object metadata items known to the client session.
// Items are loaded once from the metadata source and read many times; all
// methods are safe for concurrent use.
type Registry struct {
	items map[string]ObjectMetadataItem
	mu    sync.RWMutex
}

// NewRegistry creates an empty metadata registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]ObjectMetadataItem),
	}
}

// Register adds an object metadata item to the registry.
func (r *Registry) Register(item ObjectMetadataItem) error {
	if item.NameSingular == "" {
		return fmt.Errorf("object metadata item has no singular name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.NameSingular]; exists {
		return fmt.Errorf("object %q is already registered", item.NameSingular)
	}

	r.items[item.NameSingular] = item
	return nil
}

// Get retrieves an object metadata item by its singular name.
func (r *Registry) Get(nameSingular string) (ObjectMetadataItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[nameSingular]
	return item, exists
}

// All returns a copy of every registered item, suitable for passing as the
// objectMetadataItems collection the record entry points take.
func (r *Registry) All() []ObjectMetadataItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]ObjectMetadataItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items
}

// List returns the singular names of all registered objects.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Exists checks whether an object is registered.
func (r *Registry) Exists(nameSingular string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[nameSingular]
	return exists
}

// Count returns the number of registered objects.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Clear removes all registered items (useful for testing).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]ObjectMetadataItem)
}
