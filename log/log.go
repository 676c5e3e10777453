// Package log builds the zap loggers used by the inspector and carries per-session log context.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoder selects the log line format.
type Encoder = string

const (
	// ConsoleEncoder represents logging with plain text.
	ConsoleEncoder Encoder = "console"
	// JSONEncoder represents logging with JSON.
	JSONEncoder Encoder = "json"
)

// where logs go by default.
var logWriter io.Writer = os.Stdout

// New creates a named logger with the given level ("debug", "info", ...) and encoder.
func New(name, level string, encoder Encoder, hooks ...func(zapcore.Entry) error) (*zap.Logger, error) {
	return NewWithWriter(logWriter, name, level, encoder, hooks...)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(
	w io.Writer,
	name, level string,
	encoder Encoder,
	hooks ...func(zapcore.Entry) error,
) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	var enc zapcore.Encoder
	switch encoder {
	case JSONEncoder:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case ConsoleEncoder, "":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log encoder %q", encoder)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(name), nil
}
