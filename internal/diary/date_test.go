package diary

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		schedule Schedule
		want     string
	}{
		{"2024-03-01", Day, "2024-03-01"},
		{" 2024-03 ", Month, "2024-03"},
		{"2024", Year, "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if d.Schedule != tt.schedule {
				t.Fatalf("Schedule = %v, want %v", d.Schedule, tt.schedule)
			}
			if d.String() != tt.want {
				t.Fatalf("String = %q, want %q", d.String(), tt.want)
			}
		})
	}

	for _, bad := range []string{"", "yesterday", "2024-13", "2024-02-30"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q) returned nil error", bad)
		}
	}
}

func TestShift(t *testing.T) {
	day, _ := Parse("2024-02-28")
	if got := day.Shift(2).String(); got != "2024-03-01" {
		t.Fatalf("day shift = %q, want 2024-03-01", got)
	}
	month, _ := Parse("2024-01")
	if got := month.Shift(-1).String(); got != "2023-12" {
		t.Fatalf("month shift = %q, want 2023-12", got)
	}
	year, _ := Parse("2024")
	if got := year.Shift(1).String(); got != "2025" {
		t.Fatalf("year shift = %q, want 2025", got)
	}
}

func TestWithScheduleTruncates(t *testing.T) {
	day, _ := Parse("2024-07-19")
	if got := day.WithSchedule(Month).String(); got != "2024-07" {
		t.Fatalf("month = %q, want 2024-07", got)
	}
	if got := day.WithSchedule(Year).String(); got != "2024" {
		t.Fatalf("year = %q, want 2024", got)
	}
	if Day.Next() != Month || Month.Next() != Year || Year.Next() != Day {
		t.Fatalf("schedule cycle broken")
	}
}

func TestTodayIsDay(t *testing.T) {
	d := Today()
	if d.Schedule != Day {
		t.Fatalf("Today schedule = %v, want day", d.Schedule)
	}
	if d.String() != time.Now().Format("2006-01-02") {
		t.Fatalf("Today = %q", d.String())
	}
}
