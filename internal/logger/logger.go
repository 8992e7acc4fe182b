// Package logger configures log/slog for the uoyweek server and CLI, and
// carries the HTTP request ID from middleware into handler log records.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/zapponejosh/uoyweek/internal/config"
)

type requestIDKey struct{}

// Setup installs the server logger, writing to stdout.
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWriter(cfg, os.Stdout)
}

// SetupWriter builds the logger described by LOG_LEVEL and LOG_FORMAT,
// writing to w, and makes it the slog default. At debug level records
// carry their source position.
func SetupWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Values slog does not
// recognize mean info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithRequestID returns ctx tagged with the request's X-Request-ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the ID stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns the default logger, with a request_id attribute
// when ctx belongs to an API request.
func FromContext(ctx context.Context) *slog.Logger {
	if id := RequestID(ctx); id != "" {
		return slog.Default().With(slog.String("request_id", id))
	}
	return slog.Default()
}

// Error logs msg for the request in ctx with err under the "error" key.
func Error(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).ErrorContext(ctx, msg, append([]any{slog.Any("error", err)}, args...)...)
}

// Warn logs msg at warn level for the request in ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).WarnContext(ctx, msg, args...)
}

// Info logs msg at info level for the request in ctx.
func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).InfoContext(ctx, msg, args...)
}
