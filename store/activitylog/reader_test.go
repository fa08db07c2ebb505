package activitylog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testDate = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func writeLog(t *testing.T, root string, lines string) {
	t.Helper()
	dir := filepath.Join(root, "activity")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "activity_2026-08-28.jsonl")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDayMissingFile(t *testing.T) {
	reader := NewReader(t.TempDir())
	events := reader.LoadDay(testDate)
	if len(events) != 0 {
		t.Errorf("expected empty day for missing log, got %d events", len(events))
	}
}

func TestLoadDayDecodesRecords(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, `{"timestamp":"2026-08-28T09:00:00Z","event_type":"break_shown","event_data":{"break_type":"eye_care","duration_seconds":20}}
{"timestamp":"2026-08-28T09:05:00Z","event_type":"break_completed","event_data":{"break_type":"eye_care","user_dismissed":false}}
{"timestamp":"2026-08-28T10:00:00Z","event_type":"session_started","event_data":{"session_type":"deep_work"},"system_state":{"total_work_minutes_today":55}}
`)

	events := NewReader(root).LoadDay(testDate)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].EventType != EventBreakShown {
		t.Errorf("event_type = %q, want %q", events[0].EventType, EventBreakShown)
	}
	if got := events[0].DataString("break_type"); got != BreakTypeEyeCare {
		t.Errorf("break_type = %q, want %q", got, BreakTypeEyeCare)
	}
	if events[2].SystemState == nil || events[2].SystemState.TotalWorkMinutesToday != 55 {
		t.Errorf("system_state not decoded: %+v", events[2].SystemState)
	}
}

func TestLoadDaySkipsMalformedLines(t *testing.T) {
	root := t.TempDir()
	writeLog(t, root, `{"timestamp":"2026-08-28T09:00:00Z","event_type":"break_shown"}
{not json at all
{"timestamp":"2026-08-28T10:00:00Z","event_type":"break_completed"}

{"timestamp":"2026-08-28T11:00:00Z","event_type":"command_received","event_data":{"command_text":"pause"}}
`)

	events := NewReader(root).LoadDay(testDate)
	if len(events) != 3 {
		t.Fatalf("expected 3 valid events, got %d", len(events))
	}
	// Append order is preserved across skipped lines.
	want := []string{EventBreakShown, EventBreakCompleted, EventCommandReceived}
	for i, eventType := range want {
		if events[i].EventType != eventType {
			t.Errorf("events[%d].EventType = %q, want %q", i, events[i].EventType, eventType)
		}
	}
}

func TestAppendRoundTrip(t *testing.T) {
	root := t.TempDir()
	appender := NewAppender(root)

	for _, event := range []Event{
		{Timestamp: "2026-08-28T09:00:00Z", EventType: EventBreakShown, EventData: map[string]any{"break_type": "eye_care"}},
		{Timestamp: "2026-08-28T17:00:00Z", EventType: EventAppStopped, SystemState: &SystemState{TotalWorkMinutesToday: 410}},
	} {
		if err := appender.Append(testDate, event); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	events := NewReader(root).LoadDay(testDate)
	if len(events) != 2 {
		t.Fatalf("expected 2 events after round trip, got %d", len(events))
	}
	if events[1].SystemState == nil || events[1].SystemState.TotalWorkMinutesToday != 410 {
		t.Errorf("system_state lost in round trip: %+v", events[1].SystemState)
	}
}

func TestEventTime(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		wantOK    bool
		wantHour  int
	}{
		{"RFC3339 with Z", "2026-08-28T14:30:00Z", true, 14},
		{"RFC3339 with offset", "2026-08-28T14:30:00+02:00", true, 14},
		{"naive local timestamp", "2026-08-28T09:15:00", true, 9},
		{"empty", "", false, 0},
		{"garbage", "yesterday-ish", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{Timestamp: tt.timestamp}
			parsed, ok := event.Time()
			if ok != tt.wantOK {
				t.Fatalf("Time() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && parsed.Hour() != tt.wantHour {
				t.Errorf("Hour() = %d, want %d", parsed.Hour(), tt.wantHour)
			}
		})
	}
}
