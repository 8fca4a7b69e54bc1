// Package field turns a remote writer and an optional validation rule into
// a controlled editable value.
//
// # Edit Buffer
//
// A Field holds the text the user sees. Change updates it at once so the
// input tracks keystrokes with no latency, then hands back a tea.Cmd that
// calls the Writer off the UI loop. The settled write comes back as a
// WrittenMsg which Update reconciles:
//
//	Change("50") ──> buffer "50", seq 7 ──cmd──> Writer.Write
//	                                                 │
//	Update(WrittenMsg{Seq: 7}) <─────────────────────┘
//	   ok:     buffer = stored value (server may normalize)
//	   failed: Err() set; buffer kept or rolled back per FailurePolicy
//
// Every edit bumps a sequence number. A result for an older sequence never
// touches the buffer, so the latest edit wins no matter in which order the
// writes settle. Edits are not debounced here; a Writer that wants
// coalescing does it itself.
//
// # Descriptor Identity
//
// Sync compares descriptors by pointer. Re-syncing the same pointer is a
// no-op, a new pointer (a page reload) resets the buffer and drops any
// unreconciled edit, including writes still in flight. The descriptor is
// never modified; after a successful write the stored value is tracked as
// Committed until the next reload replaces the record.
//
// # Validation
//
// NewValidating adds a ValidationRule. Input that fails the rule still
// lands in the buffer, is reported through setInvalid(true), and is never
// sent. Matching input reports setInvalid(false) and is written as usual.
// Validation errors stay local to the field; they never reach the page
// status.
package field
