// Package logger provides slog-based structured logging for the BuildCost
// client: a small constructor that builds a *slog.Logger from environment
// configuration, plus attribute helpers shared across the SDK and CLI.
//
// Attribute helpers use the empty Attr pattern for nil safety, so call sites
// never need explicit nil checks:
//
//	log.Error("login request failed", logger.Error(err))
//
// Construction:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(cfg, os.Stderr)
//
// The format is "text" for human-readable CLI output and "json" for machine
// consumption; the level accepts debug, info, warn and error.
package logger
