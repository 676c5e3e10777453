package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevelAndHooks(t *testing.T) {
	var (
		buf    bytes.Buffer
		hooked int
	)
	logger, err := NewWithWriter(&buf, "inspector", "info", JSONEncoder, func(entry zapcore.Entry) error {
		require.Equal(t, zapcore.InfoLevel, entry.Level)
		hooked++
		return nil
	})
	require.NoError(t, err)

	logger.Debug("not printed")
	require.Zero(t, buf.Len())
	require.Zero(t, hooked)

	logger.Info("printed", zap.Int("n", 1))
	require.Equal(t, 1, hooked)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "printed", line["msg"])
	require.Equal(t, "inspector", line["logger"])
	require.Equal(t, 1.0, line["n"])
}

func TestNewInvalid(t *testing.T) {
	_, err := New("x", "loud", ConsoleEncoder)
	require.ErrorContains(t, err, "parse log level")

	_, err = New("x", "info", "xml")
	require.ErrorContains(t, err, "unknown log encoder")
}

func TestZContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "", "debug", JSONEncoder)
	require.NoError(t, err)

	ctx := WithSessionID(context.Background(), "s1", zap.Uint64("element_id", 7))
	id, ok := ExtractSessionID(ctx)
	require.True(t, ok)
	require.Equal(t, "s1", id)

	logger.Debug("with session", ZContext(ctx))
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "s1", line["session_id"])
	require.Equal(t, 7.0, line["element_id"])

	buf.Reset()
	logger.Debug("without session", ZContext(context.Background()))
	line = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.NotContains(t, line, "session_id")
}

func TestWithNewSessionID(t *testing.T) {
	a, ok := ExtractSessionID(WithNewSessionID(context.Background()))
	require.True(t, ok)
	b, ok := ExtractSessionID(WithNewSessionID(context.Background()))
	require.True(t, ok)
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
