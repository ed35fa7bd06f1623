package notify

import "log/slog"

// Notifier is the delivery-agnostic notification channel. Implementations
// must be safe for concurrent use and must never block the caller on
// presentation; delivery is best-effort by contract.
type Notifier interface {
	// Success announces a completed operation ("Login successful!").
	Success(msg string)
	// Error announces a failed operation with a user-readable reason.
	Error(msg string)
}

// Funcs adapts two plain functions to the Notifier interface.
// Nil functions are ignored, so partial wiring is valid.
type Funcs struct {
	OnSuccess func(msg string)
	OnError   func(msg string)
}

func (f Funcs) Success(msg string) {
	if f.OnSuccess != nil {
		f.OnSuccess(msg)
	}
}

func (f Funcs) Error(msg string) {
	if f.OnError != nil {
		f.OnError(msg)
	}
}

// Log routes notifications into a structured logger. Used when no
// interactive surface is attached, keeping the session layer unconditional
// about notifying.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Success(msg string) {
	if l.Logger != nil {
		l.Logger.Info(msg)
	}
}

func (l Log) Error(msg string) {
	if l.Logger != nil {
		l.Logger.Error(msg)
	}
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Success(string) {}
func (Noop) Error(string)   {}
