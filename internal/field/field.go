package field

import (
	"context"
	"log"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// FailurePolicy decides what a failed write does to the edit buffer.
type FailurePolicy int

const (
	// KeepOnFailure leaves the optimistic value in the buffer.
	KeepOnFailure FailurePolicy = iota
	// RollbackOnFailure restores the committed value.
	RollbackOnFailure
)

// WrittenMsg reports a settled write back to the Update loop.
type WrittenMsg struct {
	ID     int
	Seq    uint64
	Sent   string
	Result Result
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Option configures a Field.
type Option func(*Field)

// WithContext sets the context passed to the writer.
func WithContext(ctx context.Context) Option {
	return func(f *Field) {
		if ctx != nil {
			f.ctx = ctx
		}
	}
}

// WithPolicy sets the failure policy.
func WithPolicy(p FailurePolicy) Option {
	return func(f *Field) {
		f.policy = p
	}
}

// Field binds one displayed value to a remote writer. It keeps a local
// edit buffer that reflects keystrokes immediately and is reconciled once
// the write for the latest edit settles.
type Field struct {
	id     int
	ctx    context.Context
	desc   *Descriptor
	writer Writer
	policy FailurePolicy

	rule       ValidationRule
	setInvalid func(bool)
	invalid    bool

	buffer    string
	committed string
	seq       uint64
	pending   bool
	err       error
}

// New binds desc to writer.
func New(desc *Descriptor, writer Writer, opts ...Option) *Field {
	f := &Field{
		id:     nextID(),
		ctx:    context.Background(),
		writer: writer,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.seed(desc)
	return f
}

// NewValidating binds desc to writer behind rule. setInvalid is told the
// outcome of every validation; it may be nil.
func NewValidating(desc *Descriptor, writer Writer, rule ValidationRule, setInvalid func(bool), opts ...Option) *Field {
	f := New(desc, writer, opts...)
	f.rule = rule
	f.setInvalid = setInvalid
	return f
}

// ID identifies the field in WrittenMsg.
func (f *Field) ID() int {
	return f.id
}

// Descriptor returns the bound descriptor.
func (f *Field) Descriptor() *Descriptor {
	return f.desc
}

// Value returns the edit buffer.
func (f *Field) Value() string {
	return f.buffer
}

// Pending reports whether the write for the latest edit is in flight.
func (f *Field) Pending() bool {
	return f.pending
}

// Err returns the failure of the latest settled write.
func (f *Field) Err() error {
	return f.err
}

// Invalid reports whether the latest edit failed validation.
func (f *Field) Invalid() bool {
	return f.invalid
}

// Committed returns the last value the server is known to hold: the
// descriptor value, or the result of the latest successful write.
func (f *Field) Committed() string {
	return f.committed
}

// Dirty reports whether the buffer differs from the committed value.
func (f *Field) Dirty() bool {
	return f.buffer != f.committed
}

// Sync rebinds the field to desc. The buffer is reset only when desc is a
// different pointer; any unreconciled edit is dropped. It reports whether
// the buffer was reset.
func (f *Field) Sync(desc *Descriptor) bool {
	if desc == f.desc {
		return false
	}
	f.seed(desc)
	return true
}

func (f *Field) seed(desc *Descriptor) {
	f.desc = desc
	f.buffer = ""
	if desc != nil {
		f.buffer = desc.Value
	}
	f.committed = f.buffer
	// Writes issued against the old descriptor must not touch the new buffer.
	f.seq++
	f.pending = false
	f.err = nil
	if f.invalid {
		f.markInvalid(false)
	}
}

// Change records raw input. The buffer updates immediately. When the input
// passes validation the returned command performs the write; otherwise the
// command is nil and nothing is sent.
func (f *Field) Change(input string) tea.Cmd {
	f.buffer = input
	f.seq++
	f.pending = false

	if f.rule != nil {
		if !f.rule.Matches(input) {
			f.markInvalid(true)
			return nil
		}
		f.markInvalid(false)
	}

	if f.writer == nil {
		return nil
	}
	f.err = nil
	f.pending = true

	id, seq, ctx, writer := f.id, f.seq, f.ctx, f.writer
	return func() tea.Msg {
		return WrittenMsg{ID: id, Seq: seq, Sent: input, Result: writer.Write(ctx, input)}
	}
}

// Update reconciles a WrittenMsg for this field and reports whether it was
// consumed. Results for superseded edits are dropped.
func (f *Field) Update(msg tea.Msg) bool {
	written, ok := msg.(WrittenMsg)
	if !ok || written.ID != f.id {
		return false
	}
	if written.Seq != f.seq {
		return true
	}
	f.pending = false
	if written.Result.OK() {
		f.err = nil
		f.buffer = written.Result.Value
		f.committed = written.Result.Value
		return true
	}

	f.err = written.Result.Err
	label := ""
	if f.desc != nil {
		label = f.desc.Label
	}
	log.Printf("write %q = %q failed: %v", label, written.Sent, f.err)
	if f.policy == RollbackOnFailure {
		f.buffer = f.committed
	}
	return true
}

func (f *Field) markInvalid(invalid bool) {
	f.invalid = invalid
	if f.setInvalid != nil {
		f.setInvalid(invalid)
	}
}
