package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lectio.log")

	logger, err := New(Config{Level: "debug", OutputPath: path})
	require.NoError(t, err)

	logger.Info("story generated")
	logger.Debug("llm request")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "story generated", entry["msg"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_LevelFiltersAndFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lectio.log")

	logger, err := New(Config{Level: "loud", Encoding: "console", OutputPath: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hidden")
	assert.Contains(t, string(raw), "shown")
}

func TestDefaultPath_UsesXDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lectio", "lectio.log"), p)
}
