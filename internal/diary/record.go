package diary

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/field"
)

// Entry is one field found in a diary payload, with the heading of the
// record that contains it.
type Entry struct {
	Heading    string
	Descriptor *field.Descriptor
}

// Entries walks the payload in order and returns a fresh descriptor for
// every object carrying both "label" and "value". Objects without a value
// contribute their label, title or name as the heading of what they contain.
func Entries(records []api.Record) []Entry {
	var out []Entry
	for _, r := range records {
		out = walk(map[string]any(r), "", out)
	}
	return out
}

func walk(node any, heading string, out []Entry) []Entry {
	switch v := node.(type) {
	case map[string]any:
		if desc, ok := descriptorOf(v); ok {
			return append(out, Entry{Heading: heading, Descriptor: desc})
		}
		for _, k := range []string{"label", "title", "name"} {
			if s, ok := v[k].(string); ok && strings.TrimSpace(s) != "" {
				heading = strings.TrimSpace(s)
				break
			}
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch v[k].(type) {
			case map[string]any, []any:
				out = walk(v[k], heading, out)
			}
		}
	case api.Record:
		return walk(map[string]any(v), heading, out)
	case []any:
		for _, child := range v {
			out = walk(child, heading, out)
		}
	}
	return out
}

func descriptorOf(obj map[string]any) (*field.Descriptor, bool) {
	label, hasLabel := obj["label"].(string)
	value, hasValue := obj["value"]
	if !hasLabel || !hasValue {
		return nil, false
	}
	switch value.(type) {
	case map[string]any, []any:
		return nil, false
	}
	desc := &field.Descriptor{
		Label: strings.TrimSpace(label),
		Value: api.FormatValue(value),
		Kind:  kindOf(obj, value),
	}
	if units, ok := obj["units"].(string); ok {
		desc.Units = strings.TrimSpace(units)
	}
	if db, ok := obj["db"]; ok && db != nil {
		desc.Key = api.FormatValue(db)
	}
	return desc, true
}

func kindOf(obj map[string]any, value any) string {
	if kind, ok := obj["type"].(string); ok && strings.TrimSpace(kind) != "" {
		return strings.ToLower(strings.TrimSpace(kind))
	}
	switch value.(type) {
	case float64:
		return "float"
	default:
		return "text"
	}
}

// Patterns looks up a configured pattern for a field label.
type Patterns func(label string) (*regexp.Regexp, bool)

// RuleFor picks the validation rule for a descriptor: a configured pattern
// for its label wins over the rule implied by its kind. A nil result means
// free text.
func RuleFor(desc *field.Descriptor, patterns Patterns) field.ValidationRule {
	if desc == nil {
		return nil
	}
	if patterns != nil {
		if re, ok := patterns(desc.Label); ok {
			return field.PatternOf(re)
		}
	}
	return field.RuleFor(desc.Kind)
}

// FieldWriter persists a single diary field.
type FieldWriter interface {
	WriteDiaryField(ctx context.Context, date, key, value string) (string, error)
}

// Writer returns the field.Writer that stores key on the diary page at date.
func Writer(w FieldWriter, date Date, key string) field.Writer {
	path := date.String()
	return field.WriterFunc(func(ctx context.Context, value string) field.Result {
		stored, err := w.WriteDiaryField(ctx, path, key, value)
		if err != nil {
			return field.Rejected(err)
		}
		return field.Stored(stored)
	})
}
