package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// logLevel backs every logger built by InitLogger so hot reload can change
// verbosity without rebuilding handlers.
var logLevel = new(slog.LevelVar)

// InitLogger initializes the application logger based on configuration.
// The TUI owns the terminal, so logs go to a rotated file unless cfg.File is
// set to "-", which selects stderr.
func InitLogger(cfg *LoggingConfig) (*slog.Logger, error) {
	logLevel.Set(parseLogLevel(cfg.Level))

	if cfg.File == "" {
		cfg.File = filepath.Join(getStateDir(), "showcase", "showcase.log")
	}

	var writer io.Writer
	isConsole := cfg.File == "-"
	if isConsole {
		writer = os.Stderr
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		writer = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge, // days
			Compress:   cfg.Compress,
		}
	}

	logger := slog.New(newHandler(writer, cfg.Format, cfg.Color && isConsole))
	slog.SetDefault(logger)

	return logger, nil
}

// SetLevel changes the level of every logger built by InitLogger.
func SetLevel(level string) {
	logLevel.Set(parseLogLevel(level))
}

func newHandler(w io.Writer, format string, color bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: logLevel}

	switch strings.ToLower(format) {
	case "json":
		return slog.NewJSONHandler(w, opts)
	default:
		if color {
			return NewColoredTextHandler(w, opts)
		}
		return slog.NewTextHandler(w, opts)
	}
}

// ColoredTextHandler wraps slog.TextHandler and colors the level for console output
type ColoredTextHandler struct {
	handler slog.Handler
	writer  io.Writer
	opts    *slog.HandlerOptions
	ops     []withOp
}

// withOp is one WithAttrs or WithGroup call, replayed in order on each record.
type withOp struct {
	group string
	attrs []slog.Attr
}

// NewColoredTextHandler creates a new handler that adds colors for console output
func NewColoredTextHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredTextHandler {
	return &ColoredTextHandler{
		handler: slog.NewTextHandler(w, opts),
		writer:  w,
		opts:    opts,
	}
}

// levelColors maps a level to its ANSI color code
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "90",
	slog.LevelInfo:  "32",
	slog.LevelWarn:  "33",
	slog.LevelError: "31",
}

// Handle implements slog.Handler interface
func (h *ColoredTextHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf strings.Builder
	var inner slog.Handler = slog.NewTextHandler(&buf, h.opts)
	for _, op := range h.ops {
		if op.group != "" {
			inner = inner.WithGroup(op.group)
		} else {
			inner = inner.WithAttrs(op.attrs)
		}
	}
	if err := inner.Handle(ctx, r); err != nil {
		return err
	}

	_, err := io.WriteString(h.writer, addColor(buf.String(), r.Level))
	return err
}

// addColor wraps the level value of a text line in its ANSI color.
func addColor(line string, level slog.Level) string {
	code, ok := levelColors[level]
	if !ok {
		return line
	}
	token := "level=" + level.String()
	return strings.Replace(line, token, fmt.Sprintf("level=\033[%sm%s\033[0m", code, level.String()), 1)
}

// WithAttrs implements slog.Handler interface
func (h *ColoredTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(withOp{attrs: append([]slog.Attr{}, attrs...)}, h.handler.WithAttrs(attrs))
}

// WithGroup implements slog.Handler interface
func (h *ColoredTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(withOp{group: name}, h.handler.WithGroup(name))
}

func (h *ColoredTextHandler) with(op withOp, handler slog.Handler) *ColoredTextHandler {
	next := *h
	next.handler = handler
	next.ops = append(append([]withOp{}, h.ops...), op)
	return &next
}

// Enabled implements slog.Handler interface
func (h *ColoredTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// parseLogLevel parses a log level string
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
