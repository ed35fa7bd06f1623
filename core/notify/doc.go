// Package notify defines the user-facing notification channel used by the
// session layer: the toast-equivalent surface where "Login successful!" and
// failure reasons are announced, decoupled from how a particular front end
// renders them.
//
// The SDK never depends on a concrete presentation. A CLI wires Funcs to
// print styled lines, a test wires a recorder, and Log routes notifications
// into structured logs when no interactive surface exists.
package notify
