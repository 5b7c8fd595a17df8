package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ActivityLog is the append-only activity feed backed by activity.json.
// Growth is unbounded on disk; truncation only ever happens at read time via
// the caller's limit.
type ActivityLog struct {
	path string
	flk  *flock.Flock
	mu   sync.Mutex
	log  *slog.Logger
	now  func() time.Time
}

// NewActivityLog creates the feed persisting to <dir>/activity.json.
func NewActivityLog(dir string, log *slog.Logger) *ActivityLog {
	path := filepath.Join(dir, "activity.json")
	return &ActivityLog{
		path: path,
		flk:  flock.New(path + ".lock"),
		log:  log.With(slog.String("collection", "activity")),
		now:  time.Now,
	}
}

// Append adds one entry with a generated id and the current timestamp.
func (l *ActivityLog) Append(ctx context.Context, message string) (domain.ActivityEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	unlock, err := l.lock(ctx)
	if err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("activity: acquire file lock: %w", err)
	}
	defer unlock()

	entry := domain.ActivityEntry{
		ID:        fmt.Sprintf("activity-%s", uuid.New()),
		Timestamp: l.now().UTC(),
		Message:   message,
	}

	entries := l.load(ctx)
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", marshalIndent)
	if err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("activity: encode feed: %w", err)
	}
	if err := writeAtomic(l.path, data); err != nil {
		return domain.ActivityEntry{}, err
	}

	return entry, nil
}

// Recent returns up to limit entries, most recent first. Read-only: the
// persisted order is never changed, only reversed for display.
func (l *ActivityLog) Recent(ctx context.Context, limit int) []domain.ActivityEntry {
	entries := l.All(ctx)

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	out := make([]domain.ActivityEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

// All returns the full feed, oldest first. Used by snapshot export.
func (l *ActivityLog) All(ctx context.Context) []domain.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	unlock, err := l.lock(ctx)
	if err != nil {
		l.log.ErrorContext(ctx, "acquire file lock", slog.String("error", err.Error()))
		return []domain.ActivityEntry{}
	}
	defer unlock()

	return l.load(ctx)
}

// Replace overwrites the feed wholesale. Snapshot import is the only caller.
func (l *ActivityLog) Replace(ctx context.Context, entries []domain.ActivityEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	unlock, err := l.lock(ctx)
	if err != nil {
		return fmt.Errorf("activity: acquire file lock: %w", err)
	}
	defer unlock()

	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	data, err := json.MarshalIndent(entries, "", marshalIndent)
	if err != nil {
		return fmt.Errorf("activity: encode feed: %w", err)
	}
	return writeAtomic(l.path, data)
}

func (l *ActivityLog) lock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := l.flk.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, errors.New("file lock not acquired")
	}
	return func() { _ = l.flk.Unlock() }, nil
}

func (l *ActivityLog) load(ctx context.Context) []domain.ActivityEntry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.log.ErrorContext(ctx, "read feed", slog.String("error", err.Error()))
		}
		return []domain.ActivityEntry{}
	}
	if len(data) == 0 {
		return []domain.ActivityEntry{}
	}

	var entries []domain.ActivityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.log.ErrorContext(ctx, "decode feed, starting empty",
			slog.String("path", l.path),
			slog.String("error", err.Error()),
		)
		return []domain.ActivityEntry{}
	}
	return entries
}
