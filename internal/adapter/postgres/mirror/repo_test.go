package mirror

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/lifeos-server/internal/adapter/postgres/testhelper"
	"github.com/openclaw/lifeos-server/internal/domain"
)

func TestRepo_UpsertClient(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	id := "client-" + uuid.New().String()
	require.NoError(t, repo.UpsertClient(ctx, id, "Acme", "active"))

	var name, status string
	err := pool.QueryRow(ctx, `SELECT name, status FROM clients WHERE id = $1`, id).Scan(&name, &status)
	require.NoError(t, err)
	assert.Equal(t, "Acme", name)
	assert.Equal(t, "active", status)

	// Second upsert with the same id updates in place.
	require.NoError(t, repo.UpsertClient(ctx, id, "Acme Corp", "paused"))

	err = pool.QueryRow(ctx, `SELECT name, status FROM clients WHERE id = $1`, id).Scan(&name, &status)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", name)
	assert.Equal(t, "paused", status)

	var count int
	err = pool.QueryRow(ctx, `SELECT count(*) FROM clients WHERE id = $1`, id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepo_DeleteClient(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	id := testhelper.SeedClient(t, pool)
	require.NoError(t, repo.DeleteClient(ctx, id))

	var count int
	err := pool.QueryRow(ctx, `SELECT count(*) FROM clients WHERE id = $1`, id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Deleting a never-mirrored id is not an error.
	require.NoError(t, repo.DeleteClient(ctx, "client-"+uuid.New().String()))
}

func TestRepo_UpsertProspect(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	id := "prospect-" + uuid.New().String()
	require.NoError(t, repo.UpsertProspect(ctx, id, "Globex", "lead", ""))
	require.NoError(t, repo.UpsertProspect(ctx, id, "Globex", "qualified", "send quote"))

	var stage, nextAction string
	err := pool.QueryRow(ctx, `SELECT stage, next_action FROM prospects WHERE id = $1`, id).Scan(&stage, &nextAction)
	require.NoError(t, err)
	assert.Equal(t, "qualified", stage)
	assert.Equal(t, "send quote", nextAction)
}

func TestRepo_InsertActivity_Idempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	entry := domain.ActivityEntry{
		ID:        "activity-" + uuid.New().String(),
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Message:   "New Client: Acme",
	}

	require.NoError(t, repo.InsertActivity(ctx, entry))
	require.NoError(t, repo.InsertActivity(ctx, entry))

	var count int
	err := pool.QueryRow(ctx, `SELECT count(*) FROM activity_log WHERE id = $1`, entry.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var message string
	err = pool.QueryRow(ctx, `SELECT message FROM activity_log WHERE id = $1`, entry.ID).Scan(&message)
	require.NoError(t, err)
	assert.Equal(t, "New Client: Acme", message)
}
