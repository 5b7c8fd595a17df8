// Package tracker implements the record lifecycle for every entity kind the
// dashboard tracks: tasks, clients, prospects, projects, ideas, weekly
// reviews, daily check-ins, and token-usage logs. It owns per-kind creation
// defaults and validation; persistence is delegated to the file store and
// every mutation (token logging excepted) is reported to the activity
// recorder.
package tracker

import (
	"context"
	"log/slog"

	"github.com/openclaw/lifeos-server/internal/store"
)

type recorder interface {
	Record(ctx context.Context, message string)
}

// Mirror replicates clients and prospects to the relational backend.
// Optional; nil disables replication. All mirror calls are best-effort.
type Mirror interface {
	UpsertClient(ctx context.Context, id, name, status string) error
	DeleteClient(ctx context.Context, id string) error
	UpsertProspect(ctx context.Context, id, name, stage, nextAction string) error
}

// Service provides record operations over the file store.
type Service struct {
	store  *store.Store
	rec    recorder
	mirror Mirror
	log    *slog.Logger
}

// NewService creates the tracker service. mirror may be nil.
func NewService(log *slog.Logger, st *store.Store, rec recorder, mirror Mirror) *Service {
	return &Service{
		store:  st,
		rec:    rec,
		mirror: mirror,
		log:    log.With("service", "tracker"),
	}
}
