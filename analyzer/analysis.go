// Package analyzer reduces one day's activity event sequence to productivity
// and eye-health metrics, derives insights from them, and maps the metrics
// onto normalized activity-ring scores.
//
// Every function here is a pure function of its input. Nothing is cached
// across days; each call is parameterized by an explicit date or event slice,
// so concurrent use for different dates needs no synchronization.
package analyzer

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// BreakTypeCounts counts shown breaks per tracked break type. The key set is
// fixed; break_type values outside it are dropped during reduction. Using a
// struct instead of a map keeps JSON key order stable across runs.
type BreakTypeCounts struct {
	EyeCare       int `json:"eye_care"`
	CustomMessage int `json:"custom_message"`
}

// HourlyActivity maps hour-of-day (0-23) to event count. Only hours with at
// least one bucketed event are present.
type HourlyActivity map[int]int

// MarshalJSON emits hours in ascending numeric order so that repeated runs
// over the same log are byte-identical.
func (h HourlyActivity) MarshalJSON() ([]byte, error) {
	hours := make([]int, 0, len(h))
	for hour := range h {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, hour := range hours {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "\"%d\":%d", hour, h[hour])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DailyAnalysis is the reducer output for one day. Immutable once built.
type DailyAnalysis struct {
	TotalBreaks      int             `json:"total_breaks"`
	BreaksCompleted  int             `json:"breaks_completed"`
	TotalWorkMinutes int             `json:"total_work_minutes"`
	BreakCompliance  float64         `json:"break_compliance"`
	DeepWorkSessions int             `json:"deep_work_sessions"`
	CommandsUsed     int             `json:"commands_used"`
	PauseEvents      int             `json:"pause_events"`
	RescheduleCount  int             `json:"reschedule_count"`
	BreakTypes       BreakTypeCounts `json:"break_types"`
	HourlyActivity   HourlyActivity  `json:"hourly_activity"`
	Insights         []string        `json:"insights"`
}

// round1 rounds to 1 decimal for presentation. Internal computation keeps
// full precision until the value is published.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BreakCompliance returns the completion rate of suggested breaks as a
// percentage in [0, 100], rounded to 1 decimal. A day with no suggested
// breaks has a compliance of 0, not a division fault.
func BreakCompliance(total, completed int) float64 {
	if total <= 0 {
		return 0
	}
	return round1(float64(completed) / float64(total) * 100)
}
