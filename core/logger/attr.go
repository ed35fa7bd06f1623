package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component tags log entries with the emitting SDK component.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Operation names the session or API operation in flight (login, restore, ...).
func Operation(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("operation", name)
}

// Endpoint records the HTTP method and path of an outbound API call.
func Endpoint(method, path string) slog.Attr {
	return slog.Attr{Key: "endpoint", Value: slog.GroupValue(
		slog.String("method", method),
		slog.String("path", path),
	)}
}

// Status creates an attribute for an HTTP response status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID creates an attribute for outbound request correlation IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// UserID creates an attribute for the authenticated account identifier.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}
