package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// New creates a new structured logger with the specified level
func New(level string) (*slog.Logger, error) {
	logLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	// JSON in production, text for development
	var handler slog.Handler
	if isProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		"service", "store-rating-service",
	)

	return logger, nil
}

// NewWithWriter creates a logger with a custom writer (useful for testing)
func NewWithWriter(level string, writer io.Writer) (*slog.Logger, error) {
	logLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug,
	}

	var handler slog.Handler
	if isProduction() {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler).With("service", "store-rating-service"), nil
}

// WithComponent creates a logger with component context
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// WithUser creates a logger with user context
func WithUser(logger *slog.Logger, userID string) *slog.Logger {
	return logger.With("user_id", userID)
}

// WithRequest creates a logger with request context
func WithRequest(logger *slog.Logger, requestID, method, path string) *slog.Logger {
	return logger.With(
		"request_id", requestID,
		"method", method,
		"path", path,
	)
}

// LogDuration logs the duration of an operation
func LogDuration(logger *slog.Logger, start time.Time, operation string, keysAndValues ...interface{}) {
	duration := time.Since(start)
	args := []interface{}{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}
	args = append(args, keysAndValues...)
	logger.Info("Operation completed", args...)
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

func isProduction() bool {
	env := strings.ToLower(os.Getenv("GO_ENV"))
	return env == "production" || env == "prod"
}
