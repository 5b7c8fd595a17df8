package finance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/lifeos-server/internal/domain"
)

type ledgerStoreMock struct {
	ReadFunc       func(ctx context.Context) domain.Ledger
	LogRevenueFunc func(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	LogExpenseFunc func(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)

	mu    sync.Mutex
	calls struct {
		LogRevenue []domain.LedgerEntry
		LogExpense []domain.LedgerEntry
	}
}

func (m *ledgerStoreMock) Read(ctx context.Context) domain.Ledger {
	if m.ReadFunc == nil {
		return domain.NewLedger()
	}
	return m.ReadFunc(ctx)
}

func (m *ledgerStoreMock) LogRevenue(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	m.mu.Lock()
	m.calls.LogRevenue = append(m.calls.LogRevenue, entry)
	m.mu.Unlock()
	if m.LogRevenueFunc == nil {
		entry.ID = "revenue-1"
		entry.Type = domain.EntryTypeRevenue
		return entry, nil
	}
	return m.LogRevenueFunc(ctx, entry)
}

func (m *ledgerStoreMock) LogExpense(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	m.mu.Lock()
	m.calls.LogExpense = append(m.calls.LogExpense, entry)
	m.mu.Unlock()
	if m.LogExpenseFunc == nil {
		entry.ID = "expense-1"
		entry.Type = domain.EntryTypeExpense
		return entry, nil
	}
	return m.LogExpenseFunc(ctx, entry)
}

type recorderMock struct {
	mu       sync.Mutex
	messages []string
}

func (m *recorderMock) Record(_ context.Context, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
}

func (m *recorderMock) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

func newTestService(ledger *ledgerStoreMock) (*Service, *recorderMock) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := &recorderMock{}
	return NewService(log, ledger, rec), rec
}

func TestService_LogRevenue(t *testing.T) {
	t.Parallel()

	ledger := &ledgerStoreMock{}
	svc, rec := newTestService(ledger)

	entry, err := svc.LogRevenue(context.Background(), EntryInput{
		Amount:      decimal.RequireFromString("1500.50"),
		Description: "Retainer",
		Recurring:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "revenue-1", entry.ID)
	assert.True(t, entry.Recurring)
	require.Len(t, ledger.calls.LogRevenue, 1)
	assert.Equal(t, []string{"Revenue Logged: $1500.5 - Retainer"}, rec.recorded())
}

func TestService_LogExpense(t *testing.T) {
	t.Parallel()

	ledger := &ledgerStoreMock{}
	svc, rec := newTestService(ledger)

	entry, err := svc.LogExpense(context.Background(), EntryInput{
		Amount:      decimal.RequireFromString("49.99"),
		Description: "Hosting",
	})
	require.NoError(t, err)

	assert.Equal(t, "expense-1", entry.ID)
	require.Len(t, ledger.calls.LogExpense, 1)
	assert.Equal(t, []string{"Expense Logged: $49.99 - Hosting"}, rec.recorded())
}

func TestService_LogRevenue_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input EntryInput
	}{
		{name: "zero amount", input: EntryInput{Amount: decimal.Zero, Description: "x"}},
		{name: "negative amount", input: EntryInput{Amount: decimal.NewFromInt(-5), Description: "x"}},
		{name: "missing description", input: EntryInput{Amount: decimal.NewFromInt(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ledger := &ledgerStoreMock{}
			svc, rec := newTestService(ledger)

			_, err := svc.LogRevenue(context.Background(), tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, ledger.calls.LogRevenue)
			assert.Empty(t, rec.recorded())
		})
	}
}

func TestService_LogRevenue_StoreError(t *testing.T) {
	t.Parallel()

	ledger := &ledgerStoreMock{
		LogRevenueFunc: func(context.Context, domain.LedgerEntry) (domain.LedgerEntry, error) {
			return domain.LedgerEntry{}, errors.New("disk full")
		},
	}
	svc, rec := newTestService(ledger)

	_, err := svc.LogRevenue(context.Background(), EntryInput{
		Amount:      decimal.NewFromInt(10),
		Description: "x",
	})
	require.Error(t, err)
	assert.Empty(t, rec.recorded())
}

func TestService_Read(t *testing.T) {
	t.Parallel()

	ledger := &ledgerStoreMock{
		ReadFunc: func(context.Context) domain.Ledger {
			l := domain.NewLedger()
			l.Revenue = append(l.Revenue, domain.LedgerEntry{
				ID:     "revenue-1",
				Type:   domain.EntryTypeRevenue,
				Amount: decimal.NewFromInt(100),
			})
			l.Recompute()
			return l
		},
	}
	svc, _ := newTestService(ledger)

	got := svc.Read(context.Background())
	assert.True(t, got.Total.Revenue.Equal(decimal.NewFromInt(100)))
}
