package field

import (
	"context"
	"errors"
)

// Descriptor is the part of a record behind one editable field. Two
// descriptors are the same field only if they are the same pointer.
type Descriptor struct {
	Value string
	Label string
	Units string
	// Key is the name the server expects in a partial write.
	Key string
	// Kind selects the default validation rule (see RuleFor).
	Kind string
}

// Editable reports whether the descriptor carries a write key.
func (d *Descriptor) Editable() bool {
	return d != nil && d.Key != ""
}

// Result is the outcome of a remote write. A successful Result carries the
// value the server stored, which may differ from what was sent.
type Result struct {
	Value string
	Err   error
}

// OK reports success.
func (r Result) OK() bool {
	return r.Err == nil
}

// Stored builds a successful Result.
func Stored(value string) Result {
	return Result{Value: value}
}

// Rejected builds a failed Result.
func Rejected(err error) Result {
	if err == nil {
		err = errors.New("write rejected")
	}
	return Result{Err: err}
}

// Writer persists a new value for one field. The page that renders the
// field owns it; a Field only borrows it. Write runs off the UI loop.
type Writer interface {
	Write(ctx context.Context, value string) Result
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, value string) Result

// Write calls f(ctx, value).
func (f WriterFunc) Write(ctx context.Context, value string) Result {
	return f(ctx, value)
}
