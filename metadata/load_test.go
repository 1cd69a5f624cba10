package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItems(t *testing.T) {
	t.Run("valid metadata", func(t *testing.T) {
		input := `[
			{"nameSingular": "company", "fields": [{"name": "id"}, {"name": "domainName"}]},
			{"nameSingular": "person", "fields": [
				{"name": "id"},
				{"name": "city"},
				{"name": "company", "relationTargetObjectMetadataNameSingular": "company"}
			]}
		]`

		items, err := ParseItems(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, items, 2)

		person, ok := FindByNameSingular(items, "person")
		require.True(t, ok)
		field, ok := person.FieldByName("company")
		require.True(t, ok)
		assert.Equal(t, "company", field.RelationTarget)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseItems(strings.NewReader("{not json"))
		assert.Error(t, err)
	})

	t.Run("missing object name", func(t *testing.T) {
		_, err := ParseItems(strings.NewReader(`[{"fields": []}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no singular name")
	})

	t.Run("missing field name", func(t *testing.T) {
		_, err := ParseItems(strings.NewReader(`[{"nameSingular": "person", "fields": [{}]}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("dangling relation target", func(t *testing.T) {
		input := `[{"nameSingular": "person", "fields": [
			{"name": "company", "relationTargetObjectMetadataNameSingular": "company"}
		]}]`
		_, err := ParseItems(strings.NewReader(input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown object")
	})
}
