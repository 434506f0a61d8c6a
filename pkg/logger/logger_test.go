package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":    "debug",
		" WARNING": "warn",
		"warn":     "warn",
		"Error":    "error",
		"fatal":    "fatal",
		"":         "info",
		"verbose":  "info",
	}
	for in, want := range cases {
		Init(in)
		assert.Equal(t, want, LevelString(), "Init(%q)", in)
	}
	Init("info")
}

func TestEntriesBelowLevelAreDropped(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout); Init("info") })

	Init("warn")
	Debugf("motos loaded")
	Infof("revisions loaded")
	Warnf("motos list: remote failed, serving from local store: %d", 503)
	Error("session save failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry struct {
		Level   string `json:"level"`
		Message string `json:"message"`
		Time    string `json:"time"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry.Level)
	assert.Equal(t, "motos list: remote failed, serving from local store: 503", entry.Message)
	assert.NotEmpty(t, entry.Time)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "error", entry.Level)
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	SetConsole(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout); Init("info") })

	Init("debug")
	Debug("no API_URL configured, using mock data")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "no API_URL configured, using mock data")
	assert.False(t, strings.HasPrefix(out, "{"), "console output must not be JSON: %q", out)
}
