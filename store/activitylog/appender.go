package activitylog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Appender writes events in the same line-delimited format the desktop
// client produces. The dashboard never writes to the log on its own; the
// appender backs the `restly log` debugging subcommand and round-trip tests.
type Appender struct {
	root string
}

// NewAppender creates an Appender rooted at the given config directory.
func NewAppender(root string) *Appender {
	return &Appender{root: root}
}

// Append encodes the event as a single JSON line and appends it to the
// log file for the given date, creating directories as needed.
func (a *Appender) Append(date time.Time, event Event) error {
	dir := filepath.Join(a.root, "activity")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create activity directory %s", dir)
	}

	path := filepath.Join(dir, "activity_"+date.Format(DateLayout)+".jsonl")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to open activity log %s", path)
	}
	defer file.Close()

	line, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "unable to encode activity event")
	}
	line = append(line, '\n')

	if _, err := file.Write(line); err != nil {
		return errors.Wrapf(err, "unable to append to activity log %s", path)
	}
	return nil
}
