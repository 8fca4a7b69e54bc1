package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is an opaque JSON object as returned by the diary API.
type Record map[string]any

// Component mirrors one entry of /api/statistics.
type Component struct {
	Name   string  `json:"name"`
	Models []Model `json:"models"`
}

// Model groups the statistics a component produced.
type Model struct {
	Name       string      `json:"name"`
	Statistics []Statistic `json:"statistics"`
}

// Statistic is a single named value.
type Statistic struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Units string `json:"units,omitempty"`
}

// Display formats the value with its units.
func (s Statistic) Display() string {
	value := FormatValue(s.Value)
	if units := strings.TrimSpace(s.Units); units != "" && value != "" {
		return value + " " + units
	}
	return value
}

// Count returns the number of statistics across all models.
func (c Component) Count() int {
	n := 0
	for _, m := range c.Models {
		n += len(m.Statistics)
	}
	return n
}

// FormatValue renders a decoded JSON scalar the way it is shown and edited.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		if value == math.Trunc(value) && math.Abs(value) < 1e15 {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return fmt.Sprint(value)
	}
}
