package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestJSONOutput_RespectsLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, App: "animal-id-card", Output: &buf})

	log.Info("dropped", nil)
	log.With(map[string]any{"request_id": "abc"}).Warn("kept", map[string]any{"profile_id": 7, " ": "ignored"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "animal-id-card", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.EqualValues(t, 7, entry["profile_id"])
	assert.NotContains(t, entry, " ")
}
