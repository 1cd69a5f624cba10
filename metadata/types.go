// Package metadata defines the runtime object metadata that drives record
// validation, field classification, and cache normalization. Object types are
// described at runtime rather than as static Go types: each object carries a
// singular name and a flat list of fields, some of which point at another
// object type through a one-to-one relation.
package metadata

import "unicode"

// FieldMetadata describes a single field declared on an object type.
type FieldMetadata struct {
	Name string `json:"name"`

	// RelationTarget names the object type (nameSingular) a one-to-one
	// relation field points at. Empty for scalar fields.
	RelationTarget string `json:"relationTargetObjectMetadataNameSingular,omitempty"`
}

// IsRelation returns true if the field is a one-to-one relation field.
func (f FieldMetadata) IsRelation() bool {
	return f.RelationTarget != ""
}

// RelationIDKey returns the foreign-key form of a relation field:
// "company" becomes "companyId". Only meaningful for relation fields.
func (f FieldMetadata) RelationIDKey() string {
	return f.Name + "Id"
}

// ObjectMetadataItem describes a dynamic object type: its singular name and
// its declared fields. Items are long-lived and treated as immutable once
// loaded; this package never modifies one.
type ObjectMetadataItem struct {
	NameSingular string          `json:"nameSingular"`
	Fields       []FieldMetadata `json:"fields"`
}

// FieldByName returns the field declared under the given name.
func (o ObjectMetadataItem) FieldByName(name string) (FieldMetadata, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldMetadata{}, false
}

// HasField returns true if the object declares a field with the given name.
func (o ObjectMetadataItem) HasField(name string) bool {
	_, ok := o.FieldByName(name)
	return ok
}

// RelationFields returns the subset of fields that are relation fields.
func (o ObjectMetadataItem) RelationFields() []FieldMetadata {
	var relations []FieldMetadata
	for _, f := range o.Fields {
		if f.IsRelation() {
			relations = append(relations, f)
		}
	}
	return relations
}

// TypeTag returns the type marker stamped on normalized cache entities for
// this object: the singular name with its first letter upper-cased
// ("company" -> "Company").
func (o ObjectMetadataItem) TypeTag() string {
	if o.NameSingular == "" {
		return ""
	}
	runes := []rune(o.NameSingular)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FindByNameSingular locates an object item in a metadata collection by its
// singular name.
func FindByNameSingular(items []ObjectMetadataItem, name string) (ObjectMetadataItem, bool) {
	for _, item := range items {
		if item.NameSingular == name {
			return item, true
		}
	}
	return ObjectMetadataItem{}, false
}
