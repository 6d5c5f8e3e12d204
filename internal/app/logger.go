package app

import (
	"fmt"
	"io"
	"log/slog"
)

// logLevels maps the accepted --log-level values. An empty level is the
// AppConfig zero value and means info.
var logLevels = map[string]slog.Level{
	"":      slog.LevelInfo,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the logger for one puzzle run. Every record carries
// runID. It does not set the global logger.
func newLogger(levelStr, formatStr, runID string, w io.Writer) (*slog.Logger, error) {
	level, ok := logLevels[levelStr]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", levelStr)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch formatStr {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", formatStr)
	}

	return slog.New(handler).With("run_id", runID), nil
}
