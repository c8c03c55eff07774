package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("test-service", "debug", &buf)

	log.Info("service_started", "Started", "req-1", map[string]interface{}{"port": 8080})

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "test-service", entry.Service)
	assert.Equal(t, "service_started", entry.Action)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.EqualValues(t, 8080, entry.Details["port"])
	assert.Nil(t, entry.Error)
}

func TestLoggerIncludesError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("test-service", "debug", &buf)

	log.Error("db_failed", "Something broke", "", nil, errors.New("boom"))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.NotNil(t, entry.Error)
	assert.Equal(t, "boom", entry.Error.Msg)
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("test-service", "info", &buf)

	log.Debug("noisy", "Dropped", "", nil)
	assert.Zero(t, buf.Len())

	log.Info("kept", "Written", "", nil)
	assert.NotZero(t, buf.Len())
}
