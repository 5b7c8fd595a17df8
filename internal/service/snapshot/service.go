// Package snapshot implements full-state export and import of the data
// directory: every collection, the ledger, and the activity feed in one JSON
// payload.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openclaw/lifeos-server/internal/domain"
	"github.com/openclaw/lifeos-server/internal/store"
)

// Service provides snapshot export and import over the file store.
type Service struct {
	store *store.Store
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates the snapshot service.
func NewService(log *slog.Logger, st *store.Store) *Service {
	return &Service{
		store: st,
		log:   log.With("service", "snapshot"),
		now:   time.Now,
	}
}

// Export reads every collection and returns them as one snapshot. The
// activity feed is exported in full, oldest first.
func (s *Service) Export(ctx context.Context) *domain.Snapshot {
	ledger := s.store.Ledger.Read(ctx)

	return &domain.Snapshot{
		Tasks:      s.store.Tasks.List(ctx),
		Clients:    s.store.Clients.List(ctx),
		Prospects:  s.store.Prospects.List(ctx),
		Projects:   s.store.Projects.List(ctx),
		Financials: &ledger,
		Tokens:     s.store.Tokens.List(ctx),
		Checkins:   s.store.Checkins.List(ctx),
		Ideas:      s.store.Ideas.List(ctx),
		Reviews:    s.store.Reviews.List(ctx),
		Activity:   s.store.Activity.All(ctx),
		ExportedAt: s.now().UTC(),
	}
}

// Import replaces each collection present in the snapshot. Kinds absent from
// the payload are left untouched. Kinds are imported sequentially with no
// rollback: a failure aborts the run and reports which kind failed, leaving
// earlier kinds already replaced.
func (s *Service) Import(ctx context.Context, snap *domain.Snapshot) error {
	if snap.Tasks != nil {
		if err := s.store.Tasks.Replace(ctx, snap.Tasks); err != nil {
			return fmt.Errorf("import tasks: %w", err)
		}
	}
	if snap.Clients != nil {
		if err := s.store.Clients.Replace(ctx, snap.Clients); err != nil {
			return fmt.Errorf("import clients: %w", err)
		}
	}
	if snap.Prospects != nil {
		if err := s.store.Prospects.Replace(ctx, snap.Prospects); err != nil {
			return fmt.Errorf("import prospects: %w", err)
		}
	}
	if snap.Projects != nil {
		if err := s.store.Projects.Replace(ctx, snap.Projects); err != nil {
			return fmt.Errorf("import projects: %w", err)
		}
	}
	if snap.Financials != nil {
		if err := s.store.Ledger.Replace(ctx, *snap.Financials); err != nil {
			return fmt.Errorf("import financials: %w", err)
		}
	}
	if snap.Tokens != nil {
		if err := s.store.Tokens.Replace(ctx, snap.Tokens); err != nil {
			return fmt.Errorf("import tokens: %w", err)
		}
	}
	if snap.Checkins != nil {
		if err := s.store.Checkins.Replace(ctx, snap.Checkins); err != nil {
			return fmt.Errorf("import checkins: %w", err)
		}
	}
	if snap.Ideas != nil {
		if err := s.store.Ideas.Replace(ctx, snap.Ideas); err != nil {
			return fmt.Errorf("import ideas: %w", err)
		}
	}
	if snap.Reviews != nil {
		if err := s.store.Reviews.Replace(ctx, snap.Reviews); err != nil {
			return fmt.Errorf("import reviews: %w", err)
		}
	}
	if snap.Activity != nil {
		if err := s.store.Activity.Replace(ctx, snap.Activity); err != nil {
			return fmt.Errorf("import activity: %w", err)
		}
	}

	s.log.InfoContext(ctx, "snapshot imported")
	return nil
}
