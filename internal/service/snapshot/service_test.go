package snapshot

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/lifeos-server/internal/domain"
	"github.com/openclaw/lifeos-server/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.Open(t.TempDir(), log)
	require.NoError(t, err)
	return st
}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	st := newTestStore(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, st), st
}

func TestService_Export(t *testing.T) {
	t.Parallel()

	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := st.Tasks.Append(ctx, &domain.Task{Title: "t1", Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	_, err = st.Clients.Append(ctx, &domain.Client{Name: "Acme", Status: "active"})
	require.NoError(t, err)
	_, err = st.Ledger.LogRevenue(ctx, domain.LedgerEntry{
		Amount:      decimal.NewFromInt(100),
		Description: "Retainer",
		Recurring:   true,
	})
	require.NoError(t, err)
	_, err = st.Activity.Append(ctx, "first")
	require.NoError(t, err)
	_, err = st.Activity.Append(ctx, "second")
	require.NoError(t, err)

	snap := svc.Export(ctx)

	require.Len(t, snap.Tasks, 1)
	require.Len(t, snap.Clients, 1)
	require.NotNil(t, snap.Financials)
	assert.True(t, snap.Financials.Total.MRR.Equal(decimal.NewFromInt(100)))
	require.Len(t, snap.Activity, 2)
	assert.Equal(t, "first", snap.Activity[0].Message)
	assert.False(t, snap.ExportedAt.IsZero())

	// Empty kinds export as empty slices, not nil.
	assert.NotNil(t, snap.Projects)
	assert.NotNil(t, snap.Ideas)
}

func TestService_Import_RoundTrip(t *testing.T) {
	t.Parallel()

	source, src := newTestService(t)
	ctx := context.Background()

	_, err := src.Tasks.Append(ctx, &domain.Task{Title: "t1", Status: domain.TaskStatusTodo})
	require.NoError(t, err)
	_, err = src.Prospects.Append(ctx, &domain.Prospect{Name: "Globex", Stage: domain.ProspectStageLead})
	require.NoError(t, err)
	_, err = src.Ledger.LogExpense(ctx, domain.LedgerEntry{
		Amount:      decimal.NewFromInt(42),
		Description: "Hosting",
	})
	require.NoError(t, err)
	_, err = src.Activity.Append(ctx, "did a thing")
	require.NoError(t, err)

	snap := source.Export(ctx)

	target, dst := newTestService(t)
	require.NoError(t, target.Import(ctx, snap))

	got := target.Export(ctx)
	assert.Equal(t, snap.Tasks, got.Tasks)
	assert.Equal(t, snap.Prospects, got.Prospects)
	assert.Equal(t, snap.Activity, got.Activity)
	assert.True(t, snap.Financials.Total.Expenses.Equal(got.Financials.Total.Expenses))

	tasks := dst.Tasks.List(ctx)
	require.Len(t, tasks, 1)
	assert.Equal(t, snap.Tasks[0].ID, tasks[0].ID)
}

func TestService_Import_AbsentKindsLeftUntouched(t *testing.T) {
	t.Parallel()

	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := st.Tasks.Append(ctx, &domain.Task{Title: "keep me", Status: domain.TaskStatusTodo})
	require.NoError(t, err)

	require.NoError(t, svc.Import(ctx, &domain.Snapshot{
		Clients: []*domain.Client{{Meta: domain.Meta{ID: "client-1"}, Name: "Acme", Status: "active"}},
	}))

	assert.Len(t, st.Tasks.List(ctx), 1)
	require.Len(t, st.Clients.List(ctx), 1)
}

func TestService_Import_RecomputesLedgerTotals(t *testing.T) {
	t.Parallel()

	svc, st := newTestService(t)
	ctx := context.Background()

	poisoned := domain.NewLedger()
	poisoned.Revenue = append(poisoned.Revenue, domain.LedgerEntry{
		ID:          "revenue-1",
		Type:        domain.EntryTypeRevenue,
		Amount:      decimal.NewFromInt(100),
		Description: "Retainer",
		Recurring:   true,
	})
	poisoned.Total.Revenue = decimal.NewFromInt(999999)

	require.NoError(t, svc.Import(ctx, &domain.Snapshot{Financials: &poisoned}))

	got := st.Ledger.Read(ctx)
	assert.True(t, got.Total.Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.Total.MRR.Equal(decimal.NewFromInt(100)))
}
