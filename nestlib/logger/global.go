package logger

import (
	"log/slog"
	"time"
)

// LogIngest logs a catalog source attempt
func LogIngest(source string, count int, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "ingest"),
		slog.String("source", source),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Warn("Catalog source failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Catalog source loaded", append(attrs, slog.Int("games", count))...)
	}
}

// LogCatalog logs catalog view operations
func LogCatalog(op string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "catalog"), slog.String("op", op)}
	slog.Debug("Catalog view updated", append(baseAttrs, attrs...)...)
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
