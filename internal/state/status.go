package state

import "time"

// Kind enumerates the phases a page fetch cycle moves through.
type Kind int

const (
	// Unset means no cycle has started yet.
	Unset Kind = iota
	// Loading means a request is in flight.
	Loading
	// Idle means the last cycle settled without an error.
	Idle
	// Failed means the last cycle settled with an error message.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Idle:
		return "idle"
	case Failed:
		return "failed"
	default:
		return "unset"
	}
}

// Status is the page-scoped busy/error state. It is owned by one page and
// mutated only from the UI loop.
type Status struct {
	kind                Kind
	message             string
	startedAt           time.Time
	settledAt           time.Time
	consecutiveFailures int
}

// Kind returns the current phase.
func (s *Status) Kind() Kind {
	return s.kind
}

// Busy returns the three-valued busy flag: nil before the first cycle,
// then true while a request is in flight and false once it settled.
func (s *Status) Busy() *bool {
	if s.kind == Unset {
		return nil
	}
	busy := s.kind == Loading
	return &busy
}

// Loading reports whether a request is in flight.
func (s *Status) Loading() bool {
	return s.kind == Loading
}

// Error returns the last error message, or "" when there is none.
func (s *Status) Error() string {
	if s.kind != Failed {
		return ""
	}
	return s.message
}

// Begin starts a cycle. The previous error is cleared before busy is set.
func (s *Status) Begin() {
	s.message = ""
	s.kind = Loading
	s.startedAt = time.Now()
}

// Settle clears busy. A failure recorded after Settle stays visible.
func (s *Status) Settle() {
	if s.kind == Loading || s.kind == Unset {
		s.kind = Idle
	}
	s.settledAt = time.Now()
}

// Succeed settles the cycle and clears any error.
func (s *Status) Succeed() {
	s.Settle()
	s.kind = Idle
	s.message = ""
	s.consecutiveFailures = 0
}

// Fail settles the cycle with an error message.
func (s *Status) Fail(message string) {
	s.Settle()
	if message == "" {
		message = "request failed"
	}
	s.kind = Failed
	s.message = message
	s.consecutiveFailures++
}

// DismissError clears a displayed error without starting a new cycle.
func (s *Status) DismissError() {
	if s.kind == Failed {
		s.kind = Idle
		s.message = ""
	}
}

// StartedAt returns when the last cycle began.
func (s *Status) StartedAt() time.Time {
	return s.startedAt
}

// SettledAt returns when the last cycle settled.
func (s *Status) SettledAt() time.Time {
	return s.settledAt
}

// ConsecutiveFailures returns how many cycles in a row ended in Fail.
func (s *Status) ConsecutiveFailures() int {
	return s.consecutiveFailures
}

// IsOffline returns true when the API has failed for multiple cycles.
func (s *Status) IsOffline() bool {
	return s.consecutiveFailures >= 2
}
