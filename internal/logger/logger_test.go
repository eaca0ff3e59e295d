package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, "sweep", &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("id", "abc").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sweep", entry["component"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "abc", entry["id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.LoggingConfig{Level: "loud"}, "http", &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
