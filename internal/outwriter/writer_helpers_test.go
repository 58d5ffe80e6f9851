package outwriter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"total": 4})
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 4, decoded["total"])
	// Indented output for human consumers.
	assert.Contains(t, buf.String(), "  \"total\"")
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, fmtNullable := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "", fmtNullable(nil))

	v := 1.5
	assert.Equal(t, "1.50", fmtNullable(&v))

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}
