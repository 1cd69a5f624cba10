package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRecordID is returned when a record handed to the normalizer
// carries no usable id field.
var ErrMissingRecordID = errors.New("record has no id field")

// UnknownFieldError reports record-input keys that no field on the target
// object declares. Every offending key is collected before failing; nothing
// is silently dropped.
type UnknownFieldError struct {
	ObjectName string
	Fields     []string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("fields %s do not exist on object %q",
		strings.Join(e.Fields, ", "), e.ObjectName)
}

// AmbiguousRelationInputError reports a record input carrying both wire forms
// of the same relation. The id form is the expected one; the nested object
// form is rejected.
type AmbiguousRelationInputError struct {
	IDField     string
	ObjectField string
}

// Error implements the error interface.
func (e *AmbiguousRelationInputError) Error() string {
	return fmt.Sprintf("relation input is ambiguous: provide %q only, not the nested %q object",
		e.IDField, e.ObjectField)
}

// IsUnknownField returns true if the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	var unknownErr *UnknownFieldError
	return errors.As(err, &unknownErr)
}

// IsAmbiguousRelationInput returns true if the error is an AmbiguousRelationInputError.
func IsAmbiguousRelationInput(err error) bool {
	var ambiguousErr *AmbiguousRelationInputError
	return errors.As(err, &ambiguousErr)
}
