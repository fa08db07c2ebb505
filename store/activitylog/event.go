// Package activitylog reads and writes the per-day activity event log
// produced by the Restly desktop client. The log is one self-contained
// JSON record per line, one file per calendar date.
package activitylog

import "time"

// Event types written by the desktop client.
const (
	EventBreakShown       = "break_shown"
	EventBreakCompleted   = "break_completed"
	EventSessionStarted   = "session_started"
	EventSessionEnded     = "session_ended"
	EventCommandReceived  = "command_received"
	EventPauseToggled     = "pause_toggled"
	EventBreakRescheduled = "break_rescheduled"
	EventAppStarted       = "app_started"
	EventAppStopped       = "app_stopped"
)

// Break types tracked by the analyzer. Values outside this set are dropped.
const (
	BreakTypeEyeCare       = "eye_care"
	BreakTypeCustomMessage = "custom_message"
)

// SessionTypeDeepWork marks a focused work session in session_started events.
const SessionTypeDeepWork = "deep_work"

// SystemState is the client's state snapshot attached to an event.
// Only total_work_minutes_today on the day's last event feeds the analysis.
type SystemState struct {
	IsPaused              bool `json:"is_paused"`
	InDeepWorkSession     bool `json:"in_deep_work_session"`
	NextBreakInMinutes    int  `json:"next_break_in_minutes"`
	TotalBreaksToday      int  `json:"total_breaks_today"`
	TotalWorkMinutesToday int  `json:"total_work_minutes_today"`
}

// Event is one activity log record.
// Unrecognized event types are carried through and ignored by the analyzer.
type Event struct {
	Timestamp   string         `json:"timestamp"`
	EventType   string         `json:"event_type"`
	EventData   map[string]any `json:"event_data,omitempty"`
	SystemState *SystemState   `json:"system_state,omitempty"`
}

// Timestamp layouts accepted by Time. The client writes RFC3339 with a
// trailing Z; older builds wrote naive local timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Time parses the event timestamp. ok is false for a missing or
// malformed value; such events still count, they are just excluded
// from time-derived fields.
func (e *Event) Time() (time.Time, bool) {
	if e.Timestamp == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, e.Timestamp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DataString returns a string field from event_data.
func (e *Event) DataString(key string) string {
	if e.EventData == nil {
		return ""
	}
	if v, ok := e.EventData[key].(string); ok {
		return v
	}
	return ""
}
