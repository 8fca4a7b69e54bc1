package field

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationRule decides whether raw input may be sent to the server.
type ValidationRule interface {
	Matches(input string) bool
}

// RuleFunc adapts a function to ValidationRule.
type RuleFunc func(input string) bool

// Matches calls f(input).
func (f RuleFunc) Matches(input string) bool {
	return f(input)
}

// Pattern is a ValidationRule backed by a regular expression.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr into a Pattern.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return Pattern{re: re}, nil
}

// MustPattern is NewPattern for package-level rules; it panics on a bad expression.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternOf wraps an already compiled expression.
func PatternOf(re *regexp.Regexp) Pattern {
	return Pattern{re: re}
}

// Matches reports whether input matches the expression. A zero Pattern matches everything.
func (p Pattern) Matches(input string) bool {
	if p.re == nil {
		return true
	}
	return p.re.MatchString(input)
}

// String returns the source expression.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// Built-in rules.
var (
	Digits  = MustPattern(`^[0-9]+$`)
	Decimal = MustPattern(`^[0-9]+(\.[0-9]*)?$`)
	Score   = MustPattern(`^(10|[0-9])$`)
)

// RuleFor returns the rule for a descriptor kind, or nil when values of
// that kind are free text.
func RuleFor(kind string) ValidationRule {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "float":
		return Decimal
	case "integer":
		return Digits
	case "score":
		return Score
	default:
		return nil
	}
}
