package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Ledger documents and API responses carry amounts as bare JSON numbers,
	// not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// LedgerEntry is one revenue or expense line.
type LedgerEntry struct {
	ID          string          `json:"id"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Recurring   bool            `json:"recurring,omitempty"`
}

// LedgerTotals is the derived cache kept alongside the entry lists. It is
// never authoritative: Recompute rebuilds it from the lists before every
// persist.
type LedgerTotals struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	MRR      decimal.Decimal `json:"mrr"`
}

// Ledger is the single financials document: ordered revenue and expense
// lists plus derived totals.
type Ledger struct {
	Revenue  []LedgerEntry `json:"revenue"`
	Expenses []LedgerEntry `json:"expenses"`
	Total    LedgerTotals  `json:"total"`
}

// NewLedger returns the zeroed ledger shape callers get before any entry has
// been logged.
func NewLedger() Ledger {
	return Ledger{
		Revenue:  []LedgerEntry{},
		Expenses: []LedgerEntry{},
		Total: LedgerTotals{
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
			MRR:      decimal.Zero,
		},
	}
}

// Recompute rebuilds Total from the entry lists. MRR sums revenue entries
// flagged recurring.
func (l *Ledger) Recompute() {
	revenue := decimal.Zero
	mrr := decimal.Zero
	for _, e := range l.Revenue {
		revenue = revenue.Add(e.Amount)
		if e.Recurring {
			mrr = mrr.Add(e.Amount)
		}
	}

	expenses := decimal.Zero
	for _, e := range l.Expenses {
		expenses = expenses.Add(e.Amount)
	}

	l.Total = LedgerTotals{Revenue: revenue, Expenses: expenses, MRR: mrr}
}
