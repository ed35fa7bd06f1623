// Package tokenstore persists the API credential between process runs.
//
// The store holds exactly one durable entry: the opaque server-issued token.
// Nothing else about the session survives a restart; the user profile is
// always re-fetched from the server during session restoration.
//
// Two implementations are provided:
//
//   - File: a YAML credentials file under the user config directory with
//     owner-only permissions. This is the production store for the CLI.
//   - Memory: an in-process store for tests and embedded use.
//
// Absence of a token is reported as ErrNotFound so callers can distinguish
// "never logged in" from an unreadable store.
package tokenstore
