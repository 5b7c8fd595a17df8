package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// Store aggregates every collection backed by the data directory. One
// instance per process; construction bootstraps the directory.
type Store struct {
	Tasks     *Collection[*domain.Task]
	Clients   *Collection[*domain.Client]
	Prospects *Collection[*domain.Prospect]
	Projects  *Collection[*domain.Project]
	Ideas     *Collection[*domain.Idea]
	Reviews   *Collection[*domain.WeeklyReview]
	Checkins  *Collection[*domain.Checkin]
	Tokens    *Collection[*domain.TokenLog]
	Activity  *ActivityLog
	Ledger    *LedgerStore

	dir string
}

// Open ensures the data directory exists and constructs all collections.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if err := EnsureReady(dir); err != nil {
		return nil, err
	}

	return &Store{
		Tasks:     NewCollection[*domain.Task](dir, "tasks", "task", log),
		Clients:   NewCollection[*domain.Client](dir, "clients", "client", log),
		Prospects: NewCollection[*domain.Prospect](dir, "prospects", "prospect", log),
		Projects:  NewCollection[*domain.Project](dir, "projects", "project", log),
		Ideas:     NewCollection[*domain.Idea](dir, "ideas", "idea", log),
		Reviews:   NewCollection[*domain.WeeklyReview](dir, "reviews", "review", log),
		Checkins:  NewCollection[*domain.Checkin](dir, "checkins", "checkin", log),
		Tokens:    NewCollection[*domain.TokenLog](dir, "tokens", "token", log),
		Activity:  NewActivityLog(dir, log),
		Ledger:    NewLedgerStore(dir, log),
		dir:       dir,
	}, nil
}

// EnsureReady creates the storage directory tree if missing. Idempotent:
// calling it when the directory already exists is a no-op.
func EnsureReady(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("bootstrap data dir %s: %w", dir, err)
	}
	return nil
}

// Ping reports whether the data directory is reachable. Used by the health
// endpoint.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dir)
	}
	return nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string { return s.dir }
