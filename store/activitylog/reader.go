package activitylog

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hrygo/restly/internal/metrics"
)

// DateLayout is the calendar-day granularity used for log file names.
const DateLayout = "2006-01-02"

// Reader loads one day's event sequence from the activity log directory.
//
// Reads are best-effort: a missing file, an unreadable file, or malformed
// lines degrade to fewer (possibly zero) events, never to an error. The
// analytics path is read-only and must not fail because the producer wrote
// a bad line.
type Reader struct {
	root string
}

// NewReader creates a Reader rooted at the given config directory.
// The log for a date lives at <root>/activity/activity_<date>.jsonl.
func NewReader(root string) *Reader {
	return &Reader{root: root}
}

// LogPath returns the log file path for the given date.
func (r *Reader) LogPath(date time.Time) string {
	return filepath.Join(r.root, "activity", "activity_"+date.Format(DateLayout)+".jsonl")
}

// LoadDay returns all decoded events for the given date in append order.
// Only successfully decoded records are returned; total_activities downstream
// counts exactly these.
func (r *Reader) LoadDay(date time.Time) []Event {
	path := r.LogPath(date)

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to open activity log, treating day as empty", "path", path, "error", err)
			metrics.LogReadFailures.Inc()
		}
		return nil
	}
	defer file.Close()

	var events []Event

	scanner := bufio.NewScanner(file)
	// Command events can carry long text; allow lines up to 1 MiB.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			slog.Warn("skipping malformed activity log line", "path", path, "line", lineNum, "error", err)
			metrics.LogRecordsSkipped.Inc()
			continue
		}

		events = append(events, event)
		metrics.LogRecordsDecoded.Inc()
	}

	if err := scanner.Err(); err != nil {
		// Keep whatever decoded cleanly before the failure.
		slog.Warn("error scanning activity log", "path", path, "error", err)
		metrics.LogReadFailures.Inc()
	}

	return events
}
