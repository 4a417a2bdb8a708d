package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/application/logging"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/test/helpers"
)

func TestStdLogger_TextFormat(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewStdLogger(&buf, "info", "text")

	// Act
	logger.Log(logging.LevelInfo, "empire evaluation started", map[string]interface{}{
		"steps":  2,
		"run_id": "empire-a1b2c3d4",
	})

	// Assert
	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "[INFO] empire evaluation started run_id=empire-a1b2c3d4 steps=2")
}

func TestStdLogger_FiltersBelowMinimumLevel(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewStdLogger(&buf, "warn", "text")

	// Act
	logger.Log(logging.LevelDebug, "hidden", nil)
	logger.Log(logging.LevelInfo, "hidden", nil)
	logger.Log(logging.LevelWarning, "shown", nil)
	logger.Log("error", "shown too", nil)

	// Assert
	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "[WARNING] shown")
	assert.Contains(t, output, "[ERROR] shown too")
}

func TestStdLogger_JSONFormat(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewStdLogger(&buf, "debug", "json")

	// Act
	logger.Log(logging.LevelDebug, "cogm price offered", map[string]interface{}{"item": "PE", "stored": true})

	// Assert
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "cogm price offered", entry["message"])
	assert.Equal(t, "PE", entry["item"])
	assert.Equal(t, true, entry["stored"])
	assert.NotEmpty(t, entry["time"])
}

func TestLoggerFromContext(t *testing.T) {
	recorder := helpers.NewRecordingLogger()

	assert.Same(t, recorder, logging.LoggerFromContext(logging.WithLogger(context.Background(), recorder)))
	assert.NotPanics(t, func() {
		logging.LoggerFromContext(context.Background()).Log(logging.LevelInfo, "dropped", nil)
	})
}

type sampleQuery struct{}

func TestMiddleware_LogsOutcome(t *testing.T) {
	// Arrange
	recorder := helpers.NewRecordingLogger()
	ctx := logging.WithLogger(context.Background(), recorder)
	middleware := logging.Middleware()

	// Act
	_, errOK := middleware(ctx, &sampleQuery{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, nil
	})
	_, errFail := middleware(ctx, &sampleQuery{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("no price available for PE")
	})

	// Assert
	require.NoError(t, errOK)
	require.Error(t, errFail)
	entries := recorder.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, logging.LevelDebug, entries[0].Level)
	assert.Equal(t, "request handled", entries[0].Message)
	assert.Equal(t, "*logging_test.sampleQuery", entries[0].Metadata["request"])
	assert.Equal(t, logging.LevelError, entries[1].Level)
	assert.Equal(t, "no price available for PE", entries[1].Metadata["error"])
}
