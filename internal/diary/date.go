package diary

import (
	"fmt"
	"strings"
	"time"
)

// Schedule is the span a diary page covers.
type Schedule int

const (
	Day Schedule = iota
	Month
	Year
)

var layouts = map[Schedule]string{
	Day:   "2006-01-02",
	Month: "2006-01",
	Year:  "2006",
}

func (s Schedule) String() string {
	switch s {
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "day"
	}
}

// Next cycles day -> month -> year -> day.
func (s Schedule) Next() Schedule {
	return (s + 1) % 3
}

// Date is a diary page address: a schedule and the date it starts on.
type Date struct {
	Schedule Schedule
	Start    time.Time
}

// Today returns the day page for now in the local time zone.
func Today() Date {
	return DateOf(Day, time.Now())
}

// DateOf truncates t to the start of the schedule.
func DateOf(s Schedule, t time.Time) Date {
	y, m, d := t.Date()
	switch s {
	case Month:
		d = 1
	case Year:
		m, d = time.January, 1
	}
	return Date{Schedule: s, Start: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// Parse reads YYYY-MM-DD, YYYY-MM or YYYY. The form decides the schedule.
func Parse(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	for _, s := range []Schedule{Year, Month, Day} {
		if t, err := time.ParseInLocation(layouts[s], trimmed, time.Local); err == nil {
			return Date{Schedule: s, Start: t}, nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse date %q", value)
}

// String formats the date in the API's path form.
func (d Date) String() string {
	return d.Start.Format(layouts[d.Schedule])
}

// Shift moves n periods forward (or back when n is negative).
func (d Date) Shift(n int) Date {
	switch d.Schedule {
	case Month:
		return Date{Schedule: Month, Start: d.Start.AddDate(0, n, 0)}
	case Year:
		return Date{Schedule: Year, Start: d.Start.AddDate(n, 0, 0)}
	default:
		return Date{Schedule: Day, Start: d.Start.AddDate(0, 0, n)}
	}
}

// WithSchedule re-addresses the same start date under another schedule.
func (d Date) WithSchedule(s Schedule) Date {
	return DateOf(s, d.Start)
}

// Title is the human form used in the page header.
func (d Date) Title() string {
	switch d.Schedule {
	case Month:
		return d.Start.Format("January 2006")
	case Year:
		return d.Start.Format("2006")
	default:
		return d.Start.Format("Mon 2 Jan 2006")
	}
}
