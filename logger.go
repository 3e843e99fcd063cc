package voxelgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with voxelgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithChunkShape adds a chunk_shape field to the logger.
func (l *Logger) WithChunkShape(shape string) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunk_shape", shape),
	}
}

// WithChunkCount adds a chunks field to the logger.
func (l *Logger) WithChunkCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunks", count),
	}
}

// LogCompress logs a whole-map compression pass. The chunk count is carried
// by the logger itself, see WithChunkCount.
func (l *Logger) LogCompress(ctx context.Context, rawBytes, compressedBytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compression failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compression completed",
			"raw_bytes", rawBytes,
			"compressed_bytes", compressedBytes,
		)
	}
}

// LogOctreeBuild logs the construction of an octree set over occupied chunks.
func (l *Logger) LogOctreeBuild(ctx context.Context, chunks, trees int) {
	l.DebugContext(ctx, "octree set built",
		"chunks", chunks,
		"trees", trees,
	)
}

// LogFill logs a bulk extent fill.
func (l *Logger) LogFill(extent string, numPoints int64) {
	l.Debug("extent filled",
		"extent", extent,
		"points", numPoints,
	)
}
