// Package activity implements the cross-cutting audit trail. Every mutating
// operation on every entity kind (token logging excepted) reports here; the
// recorder fans the message out to the activity feed, the Markdown journal,
// and the optional relational mirror.
//
// All three targets are audit writes: a failure in any of them is logged to
// the operator channel and never propagated, so the primary business
// operation still reports success.
package activity

import (
	"context"
	"log/slog"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// DefaultReadLimit caps the feed read when the caller does not supply one.
const DefaultReadLimit = 50

type feed interface {
	Append(ctx context.Context, message string) (domain.ActivityEntry, error)
	Recent(ctx context.Context, limit int) []domain.ActivityEntry
}

type journal interface {
	Append(message string) error
}

// Mirror replicates feed entries to the relational backend. Optional; a nil
// Mirror disables replication.
type Mirror interface {
	InsertActivity(ctx context.Context, entry domain.ActivityEntry) error
}

// Service is the activity recorder.
type Service struct {
	feed      feed
	journal   journal
	mirror    Mirror
	readLimit int
	log       *slog.Logger
}

// NewService creates the recorder. mirror may be nil; readLimit <= 0 falls
// back to DefaultReadLimit.
func NewService(log *slog.Logger, feed feed, journal journal, mirror Mirror, readLimit int) *Service {
	if readLimit <= 0 {
		readLimit = DefaultReadLimit
	}
	return &Service{
		feed:      feed,
		journal:   journal,
		mirror:    mirror,
		readLimit: readLimit,
		log:       log.With("service", "activity"),
	}
}

// Record appends the message to the feed, the daily journal, and the mirror.
// Best-effort on every leg.
func (s *Service) Record(ctx context.Context, message string) {
	entry, err := s.feed.Append(ctx, message)
	if err != nil {
		s.log.ErrorContext(ctx, "append activity feed",
			slog.String("message", message),
			slog.String("error", err.Error()),
		)
	}

	if err := s.journal.Append(message); err != nil {
		s.log.WarnContext(ctx, "append memory journal",
			slog.String("message", message),
			slog.String("error", err.Error()),
		)
	}

	if s.mirror != nil && entry.ID != "" {
		if err := s.mirror.InsertActivity(ctx, entry); err != nil {
			s.log.WarnContext(ctx, "mirror activity entry",
				slog.String("entry_id", entry.ID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Recent returns up to limit feed entries, most recent first. limit <= 0
// falls back to the configured read limit.
func (s *Service) Recent(ctx context.Context, limit int) []domain.ActivityEntry {
	if limit <= 0 {
		limit = s.readLimit
	}
	return s.feed.Recent(ctx, limit)
}
