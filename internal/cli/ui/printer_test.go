package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Successf("stored %s", "person:1")
	assert.Contains(t, buf.String(), "stored person:1")

	buf.Reset()
	p.Errorf("bad input")
	assert.Contains(t, buf.String(), "bad input")

	buf.Reset()
	require.NoError(t, p.JSON(map[string]any{"city": "Paris"}))
	assert.Contains(t, buf.String(), `"city": "Paris"`)
}
