package ui

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short ", 10, "short"},
		{"abcdefghij", 6, "abc..."},
		{"abcdef", 2, "ab"},
		{"anything", 0, "anything"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	got := truncateMiddle("http://diary.example.com:8000", 11)
	if len([]rune(got)) != 11 {
		t.Fatalf("got %q (%d runes), want 11", got, len([]rune(got)))
	}
	if got[:5] != "http:" || got[len(got)-4:] != "8000" {
		t.Fatalf("got %q, want both ends kept", got)
	}
}

func TestWindowKeepsFocusVisible(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7"}
	cases := []struct {
		focus, height int
		want          []string
	}{
		{0, 3, []string{"0", "1", "2"}},
		{4, 3, []string{"3", "4", "5"}},
		{7, 3, []string{"5", "6", "7"}},
		{2, 20, lines},
	}
	for _, tc := range cases {
		if got := window(lines, tc.focus, tc.height); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("window(focus=%d, height=%d) = %v, want %v", tc.focus, tc.height, got, tc.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("rest_hr"); got != "Rest Hr" {
		t.Fatalf("titleCase = %q", got)
	}
	if got := titleCase("month"); got != "Month" {
		t.Fatalf("titleCase = %q", got)
	}
}
