package record

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	unknownErr := &UnknownFieldError{ObjectName: "person", Fields: []string{"other", "unknownField"}}
	assert.Equal(t, `fields other, unknownField do not exist on object "person"`, unknownErr.Error())

	ambiguousErr := &AmbiguousRelationInputError{IDField: "companyId", ObjectField: "company"}
	assert.Equal(t, `relation input is ambiguous: provide "companyId" only, not the nested "company" object`, ambiguousErr.Error())
}

func TestErrorHelpersUnwrap(t *testing.T) {
	unknownErr := fmt.Errorf("building optimistic record: %w",
		&UnknownFieldError{ObjectName: "person", Fields: []string{"x"}})
	assert.True(t, IsUnknownField(unknownErr))
	assert.False(t, IsAmbiguousRelationInput(unknownErr))

	ambiguousErr := fmt.Errorf("building optimistic record: %w",
		&AmbiguousRelationInputError{IDField: "companyId", ObjectField: "company"})
	assert.True(t, IsAmbiguousRelationInput(ambiguousErr))
	assert.False(t, IsUnknownField(ambiguousErr))
}
