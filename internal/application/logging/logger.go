package logging

import "context"

// HandlerLogger receives structured records from command handlers. Levels are
// DEBUG, INFO, WARN and ERROR.
type HandlerLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Discard drops every record
var Discard HandlerLogger = discard{}

type discard struct{}

func (discard) Log(string, string, map[string]interface{}) {}

type loggerKey struct{}

// WithLogger returns a context carrying logger
func WithLogger(ctx context.Context, logger HandlerLogger) context.Context {
	if logger == nil {
		logger = Discard
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext returns the context's logger, or Discard
func LoggerFromContext(ctx context.Context) HandlerLogger {
	if logger, ok := ctx.Value(loggerKey{}).(HandlerLogger); ok {
		return logger
	}
	return Discard
}
