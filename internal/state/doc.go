// Package state holds the page-scoped busy/error status shared by the fetch
// orchestration in package remote and the presentation layer in package ui.
//
// # Overview
//
// A page used to carry two loose values, a three-valued busy flag
// (nil/true/false) and an error message (or nil). They could drift apart:
// a page could show a spinner and an error dialog at once. Status folds
// both into one tagged value:
//
//	Unset ──Begin──> Loading ──Succeed──> Idle
//	                    │
//	                    ├──Settle───> Idle      (auth redirect)
//	                    └──Fail(msg)─> Failed
//
// Busy() and Error() derive the two legacy views from the tag so existing
// renderers can keep reading them.
//
// # Ordering
//
// Begin clears the previous error before marking the page busy. Fail
// clears busy before recording the new message. A renderer can therefore
// never observe Loading together with a stale error.
//
// # Concurrency Model
//
// Status has no lock. It belongs to one page and is only touched from the
// Bubble Tea Update loop; network goroutines hand their results back as
// messages instead of mutating it.
//
// # Failure Tracking
//
// Consecutive failed cycles are counted so the header can show an offline
// marker after two failures in a row. A successful cycle resets the count.
package state
