// Package finance implements the financial ledger operations: logging
// revenue and expense entries with monetary validation and reading back the
// ledger with its derived totals.
package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openclaw/lifeos-server/internal/domain"
)

type ledgerStore interface {
	Read(ctx context.Context) domain.Ledger
	LogRevenue(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	LogExpense(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
}

type recorder interface {
	Record(ctx context.Context, message string)
}

// Service provides ledger operations.
type Service struct {
	ledger ledgerStore
	rec    recorder
	log    *slog.Logger
}

// NewService creates the finance service.
func NewService(log *slog.Logger, ledger ledgerStore, rec recorder) *Service {
	return &Service{
		ledger: ledger,
		rec:    rec,
		log:    log.With("service", "finance"),
	}
}

// EntryInput holds the fields for logging a ledger entry.
type EntryInput struct {
	Amount      decimal.Decimal
	Description string
	Recurring   bool
}

func (in EntryInput) Validate() error {
	var errs []domain.FieldError
	if !in.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Read returns the ledger with its derived totals.
func (s *Service) Read(ctx context.Context) domain.Ledger {
	return s.ledger.Read(ctx)
}

// LogRevenue appends a revenue entry. Recurring revenue contributes to the
// MRR total.
func (s *Service) LogRevenue(ctx context.Context, in EntryInput) (domain.LedgerEntry, error) {
	if err := in.Validate(); err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("validate input: %w", err)
	}

	entry, err := s.ledger.LogRevenue(ctx, domain.LedgerEntry{
		Amount:      in.Amount,
		Description: in.Description,
		Recurring:   in.Recurring,
	})
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("log revenue: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Revenue Logged: $%s - %s", entry.Amount, entry.Description))
	return entry, nil
}

// LogExpense appends an expense entry.
func (s *Service) LogExpense(ctx context.Context, in EntryInput) (domain.LedgerEntry, error) {
	if err := in.Validate(); err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("validate input: %w", err)
	}

	entry, err := s.ledger.LogExpense(ctx, domain.LedgerEntry{
		Amount:      in.Amount,
		Description: in.Description,
	})
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("log expense: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Expense Logged: $%s - %s", entry.Amount, entry.Description))
	return entry, nil
}
