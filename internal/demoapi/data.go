package demoapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/diary"
)

func defaultFields() []fieldSpec {
	return []fieldSpec{
		{Section: "Health", Key: "weight", Label: "Weight", Units: "kg", Kind: "float"},
		{Section: "Health", Key: "rest_hr", Label: "Rest HR", Units: "bpm", Kind: "integer"},
		{Section: "Health", Key: "sleep", Label: "Sleep", Units: "h", Kind: "float"},
		{Section: "Day", Key: "mood", Label: "Mood", Kind: "score"},
		{Section: "Day", Key: "notes", Label: "Notes", Kind: "text"},
	}
}

func defaultStatistics() []api.Component {
	return []api.Component{
		{
			Name: "Activity",
			Models: []api.Model{
				{Name: "Ride", Statistics: []api.Statistic{
					{Name: "Distance", Value: 42.3, Units: "km"},
					{Name: "Climb", Value: 512.0, Units: "m"},
				}},
				{Name: "Run", Statistics: []api.Statistic{
					{Name: "Distance", Value: 10.0, Units: "km"},
				}},
			},
		},
		{
			Name: "Fitness",
			Models: []api.Model{
				{Name: "Impulse", Statistics: []api.Statistic{
					{Name: "Fitness", Value: 38.0},
					{Name: "Fatigue", Value: 45.0},
				}},
			},
		},
	}
}

// dayRecords groups the editable fields of one day by section. Caller holds mu.
func (s *Server) dayRecords(date string) []api.Record {
	day := s.days[date]
	var (
		out      []api.Record
		sections = map[string]int{}
	)
	for _, f := range s.fields {
		entry := map[string]any{
			"label": f.Label,
			"value": day[f.Key],
			"type":  f.Kind,
			"db":    f.Key,
		}
		if f.Units != "" {
			entry["units"] = f.Units
		}
		idx, ok := sections[f.Section]
		if !ok {
			idx = len(out)
			sections[f.Section] = idx
			out = append(out, api.Record{"label": f.Section, "fields": []any{}})
		}
		out[idx]["fields"] = append(out[idx]["fields"].([]any), entry)
	}
	return out
}

// summaryRecords reports read-only means of the numeric fields across a
// month or year. Caller holds mu.
func (s *Server) summaryRecords(date diary.Date) []api.Record {
	end := date.Shift(1).Start
	var stats []any
	logged := 0
	for d := date.Start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if len(s.days[d.Format("2006-01-02")]) > 0 {
			logged++
		}
	}
	stats = append(stats, map[string]any{"label": "Days logged", "value": logged, "type": "integer"})
	for _, f := range s.fields {
		if f.Kind == "text" {
			continue
		}
		sum, n := 0.0, 0
		for d := date.Start; d.Before(end); d = d.AddDate(0, 0, 1) {
			if v, ok := s.days[d.Format("2006-01-02")][f.Key]; ok {
				if x, ok := number(v); ok {
					sum += x
					n++
				}
			}
		}
		entry := map[string]any{"label": "Mean " + f.Label, "value": nil, "type": "float"}
		if n > 0 {
			entry["value"] = sum / float64(n)
		}
		if f.Units != "" {
			entry["units"] = f.Units
		}
		stats = append(stats, entry)
	}
	return []api.Record{{"title": date.Title(), "summary": stats}}
}

var errNotNumber = errors.New("not a number")

// normalize turns the submitted text into the value stored for a field.
// An empty string clears the field.
func normalize(f fieldSpec, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if f.Kind == "text" {
		return raw, nil
	}
	if trimmed == "" {
		return nil, nil
	}
	switch f.Kind {
	case "float":
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, errNotNumber
		}
		if v < 0 {
			return nil, errors.New("must not be negative")
		}
		return v, nil
	case "integer":
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, errNotNumber
		}
		return v, nil
	case "score":
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, errNotNumber
		}
		if v < 0 || v > 10 {
			return nil, errors.New("must be between 0 and 10")
		}
		return v, nil
	}
	return raw, nil
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

// Seed fills the last week with plausible values so a fresh demo has data.
func (s *Server) Seed(now time.Time) {
	base := diary.DateOf(diary.Day, now)
	for i := 0; i < 7; i++ {
		date := base.Shift(-i).String()
		s.Set(date, "weight", 72.4+float64(i%3)*0.3)
		s.Set(date, "rest_hr", int64(48+i%4))
		s.Set(date, "sleep", 7.5)
		s.Set(date, "mood", 6+i%3)
	}
	s.Set(base.String(), "notes", "easy spin, legs heavy")
}
