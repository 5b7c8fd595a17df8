package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/openclaw/lifeos-server/internal/domain"
	"github.com/openclaw/lifeos-server/internal/service/finance"
)

// financeService defines the minimal interface needed by FinanceHandler.
type financeService interface {
	Read(ctx context.Context) domain.Ledger
	LogRevenue(ctx context.Context, in finance.EntryInput) (domain.LedgerEntry, error)
	LogExpense(ctx context.Context, in finance.EntryInput) (domain.LedgerEntry, error)
}

// FinanceHandler serves the ledger REST endpoints.
type FinanceHandler struct {
	svc financeService
	log *slog.Logger
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc financeService, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: logger.With("handler", "finance")}
}

type entryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Recurring   bool            `json:"recurring"`
}

// Read handles GET /api/financials.
func (h *FinanceHandler) Read(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Read(r.Context()))
}

// LogRevenue handles POST /api/financials/revenue.
func (h *FinanceHandler) LogRevenue(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.LogRevenue(r.Context(), finance.EntryInput{
		Amount:      req.Amount,
		Description: req.Description,
		Recurring:   req.Recurring,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// LogExpense handles POST /api/financials/expense.
func (h *FinanceHandler) LogExpense(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.LogExpense(r.Context(), finance.EntryInput{
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
