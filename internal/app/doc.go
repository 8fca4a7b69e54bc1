// Package app is the composition root of pacer.
//
// Run loads the config and preferences, builds the API client with the
// configured token, sends the standard logger to <log_dir>/pacer.log and
// hands everything to the TUI. The one-shot commands (PrintDiary,
// PrintStatistics) reuse the same config and client and write the fetched
// payload as JSON or YAML. ServeDemo runs the in-memory diary API so the
// dashboard can be tried without a backend.
//
// Errors are fatal only at startup: a missing config falls back to
// defaults, a malformed one (or a bad validation pattern) stops Run.
// Everything that goes wrong after the TUI starts is shown in the UI and
// logged.
package app
