// Package logging defines the structured-logging interface used across the
// console. The only implementation wraps log/slog.
package logging

import "context"

// Logger takes a message plus alternating key/value args:
//
//	log.Info(ctx, "list loaded", "resource", "users", "page", 2)
type Logger interface {
	// Debug is for request-level detail: request ids, superseded fetches.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
