package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_Stderr(t *testing.T) {
	var buf bytes.Buffer
	result := newLoggerWithPath(Config{Level: "warn", Format: FormatJSON}, &buf)
	t.Cleanup(func() { _ = result.Close() })

	assert.False(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, zerolog.WarnLevel, result.Logger.GetLevel())

	result.Logger.Info().Msg("hidden")
	result.Logger.Warn().Str("activity", "bus").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &event))
	assert.Equal(t, "shown", event["message"])
	assert.Equal(t, "bus", event["activity"])
}

func TestNewLoggerWithPath_InvalidLevelDefaultsToInfo(t *testing.T) {
	result := newLoggerWithPath(Config{Level: "chatty"}, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "footprint.log")
	result := NewLoggerWithPath(Config{Level: "debug", Output: OutputFile, File: path})

	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_FileFallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	var buf bytes.Buffer
	result := newLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "f.log")}, &buf)

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)

	result.Logger.Info().Msg("still logged")
	assert.Contains(t, buf.String(), "still logged")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(zerolog.New(&buf), "engine")
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"engine"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	//nolint:staticcheck // nil context is the case under test.
	assert.NotNil(t, FromContext(nil))
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26, "ULID string length")

	ctx = ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))

	var buf bytes.Buffer
	result := newLoggerWithPath(Config{Format: FormatJSON}, &buf)
	result.Logger.Info().Ctx(ctx).Msg("traced")
	assert.Contains(t, buf.String(), `"trace_id":"`+generated+`"`)
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")
	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}
