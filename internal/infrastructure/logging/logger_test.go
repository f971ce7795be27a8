package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/logging"
)

func TestLogger_JSONCarriesMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, config.LoggingConfig{Level: "info", Format: "json"})

	logger.Log("WARN", "Fleet order dropped", map[string]interface{}{"fleet_id": "fleet-3", "warp": 7})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Fleet order dropped", entry["msg"])
	assert.Equal(t, "fleet-3", entry["fleet_id"])
	assert.Equal(t, float64(7), entry["warp"])
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`, entry["time"])
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, config.LoggingConfig{Level: "warn", Format: "text"})

	logger.Log("DEBUG", "noise", nil)
	logger.Log("INFO", "more noise", nil)
	logger.Log("ERROR", "Turn processing failed", map[string]interface{}{"turn": 4})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "level=ERROR")
	assert.Contains(t, lines[0], "turn=4")
}

func TestNewLogger_File(t *testing.T) {
	path := t.TempDir() + "/starlanes.log"
	logger, err := logging.NewLogger(config.LoggingConfig{Level: "debug", Format: "text", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Log("debug", "Turn ended", nil)
	require.NoError(t, logger.Close())

	assert.FileExists(t, path)
}
