package store

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/lifeos-server/internal/domain"
)

func newLedgerStore(t *testing.T) *LedgerStore {
	t.Helper()
	return NewLedgerStore(t.TempDir(), slog.Default())
}

func TestLedgerStore_ReadBeforeFirstWrite(t *testing.T) {
	t.Parallel()

	s := newLedgerStore(t)

	got := s.Read(context.Background())

	assert.Empty(t, got.Revenue)
	assert.Empty(t, got.Expenses)
	assert.True(t, got.Total.Revenue.IsZero())
	assert.True(t, got.Total.Expenses.IsZero())
	assert.True(t, got.Total.MRR.IsZero())
}

func TestLedgerStore_TotalsHoldAfterEveryCall(t *testing.T) {
	t.Parallel()

	s := newLedgerStore(t)
	ctx := context.Background()

	_, err := s.LogRevenue(ctx, domain.LedgerEntry{
		Amount:      decimal.NewFromInt(500),
		Description: "invoice",
		Recurring:   true,
	})
	require.NoError(t, err)

	mid := s.Read(ctx)
	assert.Equal(t, "500", mid.Total.Revenue.String())
	assert.Equal(t, "500", mid.Total.MRR.String())
	assert.Equal(t, "0", mid.Total.Expenses.String())

	_, err = s.LogRevenue(ctx, domain.LedgerEntry{
		Amount:      decimal.NewFromInt(300),
		Description: "one-off",
	})
	require.NoError(t, err)

	got := s.Read(ctx)
	assert.Equal(t, "800", got.Total.Revenue.String())
	assert.Equal(t, "500", got.Total.MRR.String())
	assert.Equal(t, "0", got.Total.Expenses.String())
	require.Len(t, got.Revenue, 2)
	assert.Equal(t, "invoice", got.Revenue[0].Description)
	assert.Equal(t, "one-off", got.Revenue[1].Description)
}

func TestLedgerStore_LogExpense(t *testing.T) {
	t.Parallel()

	s := newLedgerStore(t)
	ctx := context.Background()

	entry, err := s.LogExpense(ctx, domain.LedgerEntry{
		Amount:      decimal.NewFromFloat(19.99),
		Description: "hosting",
		Recurring:   true, // meaningless for expenses, must be dropped
	})
	require.NoError(t, err)

	assert.Contains(t, entry.ID, "expense-")
	assert.Equal(t, domain.EntryTypeExpense, entry.Type)
	assert.False(t, entry.Recurring)
	assert.False(t, entry.Date.IsZero())

	got := s.Read(ctx)
	assert.Equal(t, "19.99", got.Total.Expenses.String())
	assert.True(t, got.Total.MRR.IsZero())
}

func TestLedgerStore_ReplaceRecomputesTotals(t *testing.T) {
	t.Parallel()

	s := newLedgerStore(t)
	ctx := context.Background()

	imported := domain.Ledger{
		Revenue: []domain.LedgerEntry{
			{ID: "revenue-1", Type: domain.EntryTypeRevenue, Amount: decimal.NewFromInt(100), Recurring: true},
		},
		// A lying totals cache must be discarded.
		Total: domain.LedgerTotals{
			Revenue: decimal.NewFromInt(9999),
			MRR:     decimal.Zero,
		},
	}

	require.NoError(t, s.Replace(ctx, imported))

	got := s.Read(ctx)
	assert.Equal(t, "100", got.Total.Revenue.String())
	assert.Equal(t, "100", got.Total.MRR.String())
	assert.NotNil(t, got.Expenses)
}
