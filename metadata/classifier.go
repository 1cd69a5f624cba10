package metadata

// FieldKind identifies the role a record-input key plays for an object type.
type FieldKind int

const (
	// KindUnknown means no declared field accounts for the key.
	KindUnknown FieldKind = iota
	// KindScalar is a plain declared field.
	KindScalar
	// KindRelationID is the foreign-key form of a relation ("companyId").
	KindRelationID
	// KindRelationObject is the nested-object form of a relation ("company").
	KindRelationObject
)

// String returns the string representation of the field kind.
func (k FieldKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRelationID:
		return "relation_id"
	case KindRelationObject:
		return "relation_object"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying one record-input key against an
// object's metadata.
type Classification struct {
	Kind FieldKind

	// RelationField is the base (object-form) field name for relation kinds.
	RelationField string

	// TargetType is the related object's singular name for relation kinds.
	TargetType string
}

// Classify resolves the role of a record-input key for the given object type.
//
// A key is a relation-id key only when the metadata declares a relation field
// whose conventional id key ("<field>Id") matches it exactly. A declared
// scalar field that merely ends in "Id" stays scalar: an exact name match
// always wins over the id-key convention.
func Classify(key string, object ObjectMetadataItem) Classification {
	if field, ok := object.FieldByName(key); ok {
		if field.IsRelation() {
			return Classification{
				Kind:          KindRelationObject,
				RelationField: field.Name,
				TargetType:    field.RelationTarget,
			}
		}
		return Classification{Kind: KindScalar}
	}

	for _, field := range object.Fields {
		if field.IsRelation() && field.RelationIDKey() == key {
			return Classification{
				Kind:          KindRelationID,
				RelationField: field.Name,
				TargetType:    field.RelationTarget,
			}
		}
	}

	return Classification{Kind: KindUnknown}
}
