package metadata

import "testing"

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		registry := NewRegistry()

		err := registry.Register(ObjectMetadataItem{
			NameSingular: "person",
			Fields:       []FieldMetadata{{Name: "city"}},
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}

		item, exists := registry.Get("person")
		if !exists {
			t.Fatal("item should exist")
		}
		if item.NameSingular != "person" {
			t.Errorf("expected person, got %s", item.NameSingular)
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		registry := NewRegistry()

		item := ObjectMetadataItem{NameSingular: "person"}
		if err := registry.Register(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := registry.Register(item); err == nil {
			t.Error("expected error for duplicate registration")
		}
	})

	t.Run("unnamed item rejected", func(t *testing.T) {
		registry := NewRegistry()

		if err := registry.Register(ObjectMetadataItem{}); err == nil {
			t.Error("expected error for item with no name")
		}
	})

	t.Run("list and count", func(t *testing.T) {
		registry := NewRegistry()

		for _, name := range []string{"person", "company", "opportunity"} {
			if err := registry.Register(ObjectMetadataItem{NameSingular: name}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if registry.Count() != 3 {
			t.Errorf("expected 3 items, got %d", registry.Count())
		}

		seen := make(map[string]bool)
		for _, name := range registry.List() {
			seen[name] = true
		}
		for _, name := range []string{"person", "company", "opportunity"} {
			if !seen[name] {
				t.Errorf("expected %s in list", name)
			}
		}
	})

	t.Run("all returns every item", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(ObjectMetadataItem{NameSingular: "person"})
		registry.Register(ObjectMetadataItem{NameSingular: "company"})

		items := registry.All()
		if len(items) != 2 {
			t.Errorf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("clear", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(ObjectMetadataItem{NameSingular: "person"})
		registry.Clear()

		if registry.Exists("person") {
			t.Error("registry should be empty after clear")
		}
	})
}
