package observability

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "debug", Format: "json", Output: &buf, ServiceName: "concierge-test"})

	logger.WithConversation("c-1").Info().Str("destination", "goa").Int("members", 3).Msg("Booking confirmed")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "concierge-test", line["service"])
	assert.Equal(t, "c-1", line["conversation_id"])
	assert.Equal(t, "goa", line["destination"])
	assert.Equal(t, float64(3), line["members"])
	assert.Equal(t, "Booking confirmed", line["message"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "json", Output: &buf})

	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogEvent_TypedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "debug", Format: "json", Output: &buf})

	logger.Debug().
		Bool("completed", true).
		Dur("elapsed", 1500*time.Millisecond).
		Msgf("loaded %d packages", 12)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, true, line["completed"])
	assert.Equal(t, float64(1500), line["elapsed"])
	assert.Equal(t, "loaded 12 packages", line["message"])
}
