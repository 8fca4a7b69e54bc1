package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/five82/pacer/internal/api"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"b": 2, "a": 1}, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{\"a\":1,\"b\":2}\n" {
		t.Fatalf("json = %q", got)
	}

	buf.Reset()
	if err := Write(&buf, []int{1}, "json", true); err != nil {
		t.Fatalf("Write pretty: %v", err)
	}
	if got := buf.String(); got != "[\n  1\n]\n" {
		t.Fatalf("pretty json = %q", got)
	}
}

func TestWriteYAMLUsesJSONKeys(t *testing.T) {
	stats := []api.Component{{
		Name: "Activity",
		Models: []api.Model{{
			Name:       "Ride",
			Statistics: []api.Statistic{{Name: "Distance", Value: 42.5, Units: "km"}},
		}},
	}}

	var buf bytes.Buffer
	if err := Write(&buf, stats, "YAML", false); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, buf.String())
	}
	want := []map[string]any{{
		"name": "Activity",
		"models": []any{map[string]any{
			"name": "Ride",
			"statistics": []any{map[string]any{
				"name":  "Distance",
				"value": 42.5,
				"units": "km",
			}},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, 1, "edn", false)
	if err == nil || !strings.Contains(err.Error(), `unknown format "edn"`) {
		t.Fatalf("err = %v, want unknown format", err)
	}
}
