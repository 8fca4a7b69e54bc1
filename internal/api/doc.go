// Package api provides the HTTP client for the training diary service.
//
// # Endpoints
//
//   - GET /api/diary/{date}: diary records for a day (YYYY-MM-DD), month
//     (YYYY-MM) or year (YYYY)
//   - PATCH /api/diary/{date}: partial write of a single field, body
//     {"<key>": "<value>"}, answered with the stored record
//   - GET /api/statistics: components, their models and statistics
//
// # Responses
//
// Calls return a settled Response rather than decoding eagerly. The body is
// read inside the calling goroutine so the caller (usually a Bubble Tea
// command) can hand the whole value to the UI loop, where remote.Pipeline
// decides what to do with it. Decode is the convenience path for callers
// that just want a typed value or an error, such as the CLI subcommands.
//
// A Response with Err set never reached the server (connection refused,
// timeout, cancelled context). Otherwise StatusCode and Body describe the
// answer. Non-2xx bodies may carry {"message": "..."}; ErrorMessage falls
// back to the HTTP status text.
//
// # Headers
//
// Every request sends Accept: application/json, a pacer User-Agent, a fresh
// X-Request-ID (UUID) so server logs can be correlated with pacer.log, and
// Authorization: Bearer <token> when a token was configured or entered on
// the login view.
//
// # Concurrency
//
// Client is safe for concurrent use. The token is guarded by a mutex because
// the login view sets it from the UI loop while commands read it from their
// own goroutines.
package api
