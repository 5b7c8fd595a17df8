package rest

import (
	"log/slog"
	"net/http"

	"github.com/openclaw/lifeos-server/internal/config"
	"github.com/openclaw/lifeos-server/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Tracker  trackerService
	Finance  financeService
	Activity activityService
	Journal  memoryJournal
	Snapshot snapshotService
	Storage  pinger
	Mirror   pinger // nil when no relational mirror is configured
	Version  string
	Limiter  *middleware.RateLimiter // nil disables rate limiting
	Log      *slog.Logger
	CORS     config.CORSConfig

	RateLimitPerMinute int
}

// NewRouter builds the HTTP handler: all REST routes wrapped in the
// middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	tracker := NewTrackerHandler(deps.Tracker, deps.Log)
	finance := NewFinanceHandler(deps.Finance, deps.Log)
	activity := NewActivityHandler(deps.Activity, deps.Journal, deps.Log)
	snapshot := NewSnapshotHandler(deps.Snapshot, deps.Log)
	health := NewHealthHandler(deps.Storage, deps.Mirror, deps.Version)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("GET /api/health/live", health.Live)

	mux.HandleFunc("GET /api/tasks", tracker.ListTasks)
	mux.HandleFunc("POST /api/tasks", tracker.CreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", tracker.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", tracker.DeleteTask)

	mux.HandleFunc("GET /api/clients", tracker.ListClients)
	mux.HandleFunc("POST /api/clients", tracker.CreateClient)
	mux.HandleFunc("PUT /api/clients/{id}", tracker.UpdateClient)
	mux.HandleFunc("DELETE /api/clients/{id}", tracker.DeleteClient)

	mux.HandleFunc("GET /api/prospects", tracker.ListProspects)
	mux.HandleFunc("POST /api/prospects", tracker.CreateProspect)
	mux.HandleFunc("PUT /api/prospects/{id}", tracker.UpdateProspect)

	mux.HandleFunc("GET /api/projects", tracker.ListProjects)
	mux.HandleFunc("POST /api/projects", tracker.CreateProject)
	mux.HandleFunc("PUT /api/projects/{id}", tracker.UpdateProject)

	mux.HandleFunc("GET /api/ideas", tracker.ListIdeas)
	mux.HandleFunc("POST /api/ideas", tracker.CreateIdea)

	mux.HandleFunc("GET /api/reviews", tracker.ListReviews)
	mux.HandleFunc("POST /api/reviews", tracker.CreateReview)

	mux.HandleFunc("GET /api/checkins", tracker.ListCheckins)
	mux.HandleFunc("POST /api/checkins", tracker.CreateCheckin)

	mux.HandleFunc("GET /api/tokens", tracker.ListTokenLogs)
	mux.HandleFunc("POST /api/tokens", tracker.CreateTokenLog)

	mux.HandleFunc("GET /api/financials", finance.Read)
	mux.HandleFunc("POST /api/financials/revenue", finance.LogRevenue)
	mux.HandleFunc("POST /api/financials/expense", finance.LogExpense)

	mux.HandleFunc("GET /api/activity", activity.Recent)
	mux.HandleFunc("GET /api/memory", activity.Memory)

	mux.HandleFunc("GET /api/export", snapshot.Export)
	mux.HandleFunc("POST /api/import", snapshot.Import)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	}
	if deps.Limiter != nil && deps.RateLimitPerMinute > 0 {
		mws = append(mws, deps.Limiter.Limit(deps.RateLimitPerMinute))
	}

	return middleware.Chain(mws...)(mux)
}
