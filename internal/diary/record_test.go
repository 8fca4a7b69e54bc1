package diary

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/field"
)

const samplePayload = `[
  {"label": "Health", "fields": [
     {"label": "Weight", "value": 72.5, "units": "kg", "db": "weight", "type": "float"},
     {"label": "Rest HR", "value": 48, "units": "bpm"}
  ]},
  {"title": "Notes", "children": [
     {"label": "Comment", "value": "easy spin", "db": 17}
  ]},
  {"label": "Mood", "value": 7, "db": "mood", "type": "score"}
]`

func decode(t *testing.T, payload string) []api.Record {
	t.Helper()
	var records []api.Record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return records
}

func TestEntries(t *testing.T) {
	entries := Entries(decode(t, samplePayload))

	type flat struct {
		Heading, Label, Value, Units, Key, Kind string
	}
	var got []flat
	for _, e := range entries {
		d := e.Descriptor
		got = append(got, flat{e.Heading, d.Label, d.Value, d.Units, d.Key, d.Kind})
	}
	want := []flat{
		{"Health", "Weight", "72.5", "kg", "weight", "float"},
		{"Health", "Rest HR", "48", "bpm", "", "float"},
		{"Notes", "Comment", "easy spin", "", "17", "text"},
		{"", "Mood", "7", "", "mood", "score"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Entries mismatch (-want +got):\n%s", diff)
	}
	if entries[1].Descriptor.Editable() {
		t.Fatalf("field without db reported editable")
	}
	if !entries[0].Descriptor.Editable() {
		t.Fatalf("field with db reported read-only")
	}
}

func TestEntriesReturnsFreshDescriptors(t *testing.T) {
	records := decode(t, samplePayload)
	a, b := Entries(records), Entries(records)
	if a[0].Descriptor == b[0].Descriptor {
		t.Fatalf("Entries reused a descriptor pointer across calls")
	}
}

func TestEntriesEmpty(t *testing.T) {
	if got := Entries(nil); len(got) != 0 {
		t.Fatalf("Entries(nil) = %v, want none", got)
	}
}

func TestRuleFor(t *testing.T) {
	weight := &field.Descriptor{Label: "Weight", Kind: "float"}
	comment := &field.Descriptor{Label: "Comment", Kind: "text"}

	if RuleFor(weight, nil) != field.Decimal {
		t.Fatalf("float kind should use Decimal")
	}
	if RuleFor(comment, nil) != nil {
		t.Fatalf("text kind should be free")
	}
	if RuleFor(nil, nil) != nil {
		t.Fatalf("nil descriptor should have no rule")
	}

	digits := regexp.MustCompile(`^[0-9]+$`)
	patterns := func(label string) (*regexp.Regexp, bool) {
		if label == "Weight" {
			return digits, true
		}
		return nil, false
	}
	rule := RuleFor(weight, patterns)
	if rule == nil || rule.Matches("72.5") || !rule.Matches("72") {
		t.Fatalf("configured pattern not applied")
	}
}

type fakeWriter struct {
	date, key, value string
	stored           string
	err              error
}

func (f *fakeWriter) WriteDiaryField(_ context.Context, date, key, value string) (string, error) {
	f.date, f.key, f.value = date, key, value
	return f.stored, f.err
}

func TestWriter(t *testing.T) {
	date, _ := Parse("2024-03-01")
	fw := &fakeWriter{stored: "72.5"}
	w := Writer(fw, date, "weight")

	res := w.Write(context.Background(), "72.50")
	if !res.OK() || res.Value != "72.5" {
		t.Fatalf("Write = %#v, want stored 72.5", res)
	}
	if fw.date != "2024-03-01" || fw.key != "weight" || fw.value != "72.50" {
		t.Fatalf("writer got %q %q %q", fw.date, fw.key, fw.value)
	}

	fw.err = errors.New("rejected")
	if res := w.Write(context.Background(), "x"); res.OK() {
		t.Fatalf("Write succeeded, want rejection")
	}
}
