// Package journal keeps the human-readable conversion log: an append-only
// text file with one timestamped entry per event.
package journal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// TimeLayout is the entry timestamp, e.g. "Oct/18 14:03:22".
const TimeLayout = "Jan/02 15:04:05"

// Journal appends entries to a log file. The file is opened per entry so the
// log stays readable while the program runs.
type Journal struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// Open returns a journal writing to path. The file is created on first use.
func Open(path string) *Journal {
	return &Journal{path: path, now: time.Now}
}

// Path returns the log file location.
func (j *Journal) Path() string { return j.path }

// Log appends one entry.
func (j *Journal) Log(msg string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening conversion log: %w", err)
	}
	_, werr := fmt.Fprintf(f, "%s ----- %s\n-----\n", j.now().Format(TimeLayout), msg)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("writing conversion log: %w", werr)
	}
	return cerr
}

// Logf formats and appends one entry.
func (j *Journal) Logf(format string, args ...any) error {
	return j.Log(fmt.Sprintf(format, args...))
}
