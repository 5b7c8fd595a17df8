// Package memory maintains the human-readable Markdown mirror of the
// activity trail: one append-only file per calendar day under the memory
// directory, plus read access to the cumulative MEMORY.md kept there by the
// agent. Existing content is never rewritten; the only write operation is an
// O_APPEND line append.
//
// Line format is standardized to `- [HH:MM] message` (24-hour clock) under a
// `# YYYY-MM-DD - Daily Log` header written once, on the first entry of the
// day.
package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/openclaw/lifeos-server/internal/domain"
)

const mainFileName = "MEMORY.md"

var lineRe = regexp.MustCompile(`^- \[(\d{2}:\d{2})\] (.*)$`)

// Activity is one parsed journal line.
type Activity struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

// Journal writes and reads the daily Markdown files.
type Journal struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewJournal creates a journal rooted at dir. The directory is created on
// first append, not here, so a read-only deployment can still serve reads.
func NewJournal(dir string) *Journal {
	return &Journal{dir: dir, now: time.Now}
}

// Append adds one timestamped line to today's file, creating the file with
// its date header when this is the first entry of the day.
func (j *Journal) Append(message string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("memory dir %s: %w", j.dir, err)
	}

	now := j.now()
	day := domain.DateStamp(now)
	path := filepath.Join(j.dir, day+".md")

	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	if fresh {
		fmt.Fprintf(&b, "# %s - Daily Log\n\n", day)
	}
	fmt.Fprintf(&b, "- [%s] %s\n", now.Format("15:04"), message)

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// Today returns the raw content of the current day's file, or an empty
// string when no entry has been written yet.
func (j *Journal) Today() (string, error) {
	path := filepath.Join(j.dir, domain.DateStamp(j.now())+".md")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Main returns the content of the cumulative MEMORY.md, which lives beside
// the memory directory. Returns domain.ErrNotFound when it does not exist.
func (j *Journal) Main() (string, error) {
	path := filepath.Join(filepath.Dir(j.dir), mainFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", mainFileName, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// TodayActivities parses the current day's file into structured entries,
// skipping the header and anything that is not a journal line.
func (j *Journal) TodayActivities() ([]Activity, error) {
	content, err := j.Today()
	if err != nil {
		return nil, err
	}

	activities := []Activity{}
	for _, line := range strings.Split(content, "\n") {
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		activities = append(activities, Activity{Time: m[1], Text: m[2]})
	}
	return activities, nil
}
