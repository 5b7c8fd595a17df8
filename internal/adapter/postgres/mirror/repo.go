// Package mirror replicates clients, prospects, and the activity feed to
// PostgreSQL. The file store stays authoritative; rows here exist for SQL
// querying and dashboards. Writes are keyed on the file store's ids so
// re-mirroring the same record is an upsert, not a duplicate.
package mirror

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	postgres "github.com/openclaw/lifeos-server/internal/adapter/postgres"
	"github.com/openclaw/lifeos-server/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides mirror persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new mirror repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// UpsertClient inserts or updates the mirrored client row.
func (r *Repo) UpsertClient(ctx context.Context, id, name, status string) error {
	query, args, err := builder.
		Insert("clients").
		Columns("id", "name", "status").
		Values(id, name, status).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, status = EXCLUDED.status, updated_at = now()").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "client", id)
	}

	_, err = r.db.Exec(ctx, query, args...)
	return postgres.MapError(err, "client", id)
}

// DeleteClient removes the mirrored client row. Deleting an id that was
// never mirrored is not an error.
func (r *Repo) DeleteClient(ctx context.Context, id string) error {
	query, args, err := builder.
		Delete("clients").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "client", id)
	}

	_, err = r.db.Exec(ctx, query, args...)
	return postgres.MapError(err, "client", id)
}

// UpsertProspect inserts or updates the mirrored prospect row.
func (r *Repo) UpsertProspect(ctx context.Context, id, name, stage, nextAction string) error {
	query, args, err := builder.
		Insert("prospects").
		Columns("id", "name", "stage", "next_action").
		Values(id, name, stage, nextAction).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, stage = EXCLUDED.stage, next_action = EXCLUDED.next_action, updated_at = now()").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "prospect", id)
	}

	_, err = r.db.Exec(ctx, query, args...)
	return postgres.MapError(err, "prospect", id)
}

// InsertActivity appends one activity entry. Replayed entries are skipped on
// conflict, keeping the operation idempotent.
func (r *Repo) InsertActivity(ctx context.Context, entry domain.ActivityEntry) error {
	query, args, err := builder.
		Insert("activity_log").
		Columns("id", "message", "created_at").
		Values(entry.ID, entry.Message, entry.Timestamp).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "activity", entry.ID)
	}

	_, err = r.db.Exec(ctx, query, args...)
	return postgres.MapError(err, "activity", entry.ID)
}
