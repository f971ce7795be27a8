package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
)

// Logger writes handler log lines through slog. It satisfies the application's
// HandlerLogger so it can be put on a command context.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

// NewLogger builds a logger from the logging configuration
func NewLogger(cfg config.LoggingConfig) (*Logger, error) {
	var (
		out  io.Writer
		file *os.File
	)
	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, file = f, f
	default:
		out = os.Stderr
	}
	return newLogger(out, file, cfg), nil
}

// NewWriterLogger logs to w, for tests
func NewWriterLogger(w io.Writer, cfg config.LoggingConfig) *Logger {
	return newLogger(w, nil, cfg)
}

func newLogger(out io.Writer, file *os.File, cfg config.LoggingConfig) *Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05.000"))
			}
			return a
		},
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{logger: slog.New(handler), file: file}
}

// Log implements HandlerLogger. Metadata becomes slog attributes.
func (l *Logger) Log(level, message string, metadata map[string]interface{}) {
	args := make([]any, 0, len(metadata)*2)
	for k, v := range metadata {
		args = append(args, k, v)
	}
	switch parseLevel(level) {
	case slog.LevelDebug:
		l.logger.Debug(message, args...)
	case slog.LevelWarn:
		l.logger.Warn(message, args...)
	case slog.LevelError:
		l.logger.Error(message, args...)
	default:
		l.logger.Info(message, args...)
	}
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
