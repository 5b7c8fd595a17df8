package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// LedgerStore persists the single financials document. Unlike the generic
// collections it keeps two ordered lists inside one file and recomputes the
// derived totals inside every mutation; the cache on disk is a convenience
// for the dashboard, never a source of truth.
type LedgerStore struct {
	path string
	flk  *flock.Flock
	mu   sync.Mutex
	log  *slog.Logger
	now  func() time.Time
}

// NewLedgerStore creates the ledger persisting to <dir>/financials.json.
func NewLedgerStore(dir string, log *slog.Logger) *LedgerStore {
	path := filepath.Join(dir, "financials.json")
	return &LedgerStore{
		path: path,
		flk:  flock.New(path + ".lock"),
		log:  log.With(slog.String("collection", "financials")),
		now:  time.Now,
	}
}

// Read returns the whole ledger. Absent or unreadable files yield the zeroed
// shape so callers never special-case "ledger not yet created".
func (s *LedgerStore) Read(ctx context.Context) domain.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "acquire file lock", slog.String("error", err.Error()))
		return domain.NewLedger()
	}
	defer unlock()

	return s.load(ctx)
}

// LogRevenue appends a revenue entry, recomputes totals, and persists.
func (s *LedgerStore) LogRevenue(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	return s.append(ctx, entry, domain.EntryTypeRevenue)
}

// LogExpense appends an expense entry, recomputes totals, and persists.
// Recurring is a revenue-only concept and is dropped here.
func (s *LedgerStore) LogExpense(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	entry.Recurring = false
	return s.append(ctx, entry, domain.EntryTypeExpense)
}

// Replace overwrites the ledger wholesale, recomputing totals first: a
// snapshot's total object is never trusted.
func (s *LedgerStore) Replace(ctx context.Context, ledger domain.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx)
	if err != nil {
		return fmt.Errorf("financials: acquire file lock: %w", err)
	}
	defer unlock()

	if ledger.Revenue == nil {
		ledger.Revenue = []domain.LedgerEntry{}
	}
	if ledger.Expenses == nil {
		ledger.Expenses = []domain.LedgerEntry{}
	}
	ledger.Recompute()
	return s.save(ledger)
}

func (s *LedgerStore) append(ctx context.Context, entry domain.LedgerEntry, typ domain.EntryType) (domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("financials: acquire file lock: %w", err)
	}
	defer unlock()

	entry.ID = fmt.Sprintf("%s-%s", typ, uuid.New())
	entry.Type = typ
	entry.Date = s.now().UTC()

	ledger := s.load(ctx)
	if typ == domain.EntryTypeRevenue {
		ledger.Revenue = append(ledger.Revenue, entry)
	} else {
		ledger.Expenses = append(ledger.Expenses, entry)
	}
	ledger.Recompute()

	if err := s.save(ledger); err != nil {
		return domain.LedgerEntry{}, err
	}
	return entry, nil
}

func (s *LedgerStore) lock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := s.flk.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, errors.New("file lock not acquired")
	}
	return func() { _ = s.flk.Unlock() }, nil
}

func (s *LedgerStore) load(ctx context.Context) domain.Ledger {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.ErrorContext(ctx, "read ledger", slog.String("error", err.Error()))
		}
		return domain.NewLedger()
	}
	if len(data) == 0 {
		return domain.NewLedger()
	}

	var ledger domain.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		s.log.ErrorContext(ctx, "decode ledger, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return domain.NewLedger()
	}
	if ledger.Revenue == nil {
		ledger.Revenue = []domain.LedgerEntry{}
	}
	if ledger.Expenses == nil {
		ledger.Expenses = []domain.LedgerEntry{}
	}
	return ledger
}

func (s *LedgerStore) save(ledger domain.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", marshalIndent)
	if err != nil {
		return fmt.Errorf("financials: encode ledger: %w", err)
	}
	return writeAtomic(s.path, data)
}
