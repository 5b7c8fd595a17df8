package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/openclaw/lifeos-server/internal/domain"
	"github.com/openclaw/lifeos-server/internal/service/tracker"
)

// trackerService defines the minimal interface needed by TrackerHandler.
type trackerService interface {
	ListTasks(ctx context.Context) []*domain.Task
	CreateTask(ctx context.Context, in tracker.CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch tracker.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListClients(ctx context.Context) []*domain.Client
	CreateClient(ctx context.Context, in tracker.CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, patch tracker.ClientPatch) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListProspects(ctx context.Context) []*domain.Prospect
	CreateProspect(ctx context.Context, in tracker.CreateProspectInput) (*domain.Prospect, error)
	UpdateProspect(ctx context.Context, id string, patch tracker.ProspectPatch) (*domain.Prospect, error)

	ListProjects(ctx context.Context) []*domain.Project
	CreateProject(ctx context.Context, in tracker.CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch tracker.ProjectPatch) (*domain.Project, error)

	ListIdeas(ctx context.Context) []*domain.Idea
	CreateIdea(ctx context.Context, in tracker.CreateIdeaInput) (*domain.Idea, error)

	ListReviews(ctx context.Context) []*domain.WeeklyReview
	CreateReview(ctx context.Context, in tracker.CreateReviewInput) (*domain.WeeklyReview, error)

	ListCheckins(ctx context.Context) []*domain.Checkin
	CreateCheckin(ctx context.Context, in tracker.CreateCheckinInput) (*domain.Checkin, error)

	ListTokenLogs(ctx context.Context) []*domain.TokenLog
	CreateTokenLog(ctx context.Context, in tracker.CreateTokenLogInput) (*domain.TokenLog, error)
}

// TrackerHandler serves the record REST endpoints.
type TrackerHandler struct {
	svc trackerService
	log *slog.Logger
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(svc trackerService, logger *slog.Logger) *TrackerHandler {
	return &TrackerHandler{svc: svc, log: logger.With("handler", "tracker")}
}

type taskRequest struct {
	Title    *string            `json:"title"`
	Status   *domain.TaskStatus `json:"status"`
	Priority *string            `json:"priority"`
}

type clientRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

type prospectRequest struct {
	Name       *string               `json:"name"`
	Stage      *domain.ProspectStage `json:"stage"`
	NextAction *string               `json:"next_action"`
}

type projectRequest struct {
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	Progress *int    `json:"progress"`
}

type ideaRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type reviewRequest struct {
	Title string `json:"title"`
	Wins  string `json:"wins"`
	Focus string `json:"focus"`
	Notes string `json:"notes"`
}

type checkinRequest struct {
	Energy int `json:"energy"`
	Focus  int `json:"focus"`
}

type tokenRequest struct {
	Cost     float64        `json:"cost"`
	Metadata map[string]any `json:"metadata"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// ListTasks handles GET /api/tasks.
func (h *TrackerHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListTasks(r.Context()))
}

// CreateTask handles POST /api/tasks.
func (h *TrackerHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := tracker.CreateTaskInput{}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Status != nil {
		in.Status = *req.Status
	}
	if req.Priority != nil {
		in.Priority = *req.Priority
	}

	task, err := h.svc.CreateTask(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/{id}.
func (h *TrackerHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), r.PathValue("id"), tracker.TaskPatch{
		Title:    req.Title,
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TrackerHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// ListClients handles GET /api/clients.
func (h *TrackerHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListClients(r.Context()))
}

// CreateClient handles POST /api/clients.
func (h *TrackerHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := tracker.CreateClientInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Status != nil {
		in.Status = *req.Status
	}

	client, err := h.svc.CreateClient(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, client)
}

// UpdateClient handles PUT /api/clients/{id}.
func (h *TrackerHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client, err := h.svc.UpdateClient(r.Context(), r.PathValue("id"), tracker.ClientPatch{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// DeleteClient handles DELETE /api/clients/{id}.
func (h *TrackerHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteClient(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// ListProspects handles GET /api/prospects.
func (h *TrackerHandler) ListProspects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListProspects(r.Context()))
}

// CreateProspect handles POST /api/prospects.
func (h *TrackerHandler) CreateProspect(w http.ResponseWriter, r *http.Request) {
	var req prospectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := tracker.CreateProspectInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Stage != nil {
		in.Stage = *req.Stage
	}
	if req.NextAction != nil {
		in.NextAction = *req.NextAction
	}

	prospect, err := h.svc.CreateProspect(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, prospect)
}

// UpdateProspect handles PUT /api/prospects/{id}.
func (h *TrackerHandler) UpdateProspect(w http.ResponseWriter, r *http.Request) {
	var req prospectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prospect, err := h.svc.UpdateProspect(r.Context(), r.PathValue("id"), tracker.ProspectPatch{
		Name:       req.Name,
		Stage:      req.Stage,
		NextAction: req.NextAction,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, prospect)
}

// ListProjects handles GET /api/projects.
func (h *TrackerHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListProjects(r.Context()))
}

// CreateProject handles POST /api/projects.
func (h *TrackerHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := tracker.CreateProjectInput{Progress: req.Progress}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Status != nil {
		in.Status = *req.Status
	}

	project, err := h.svc.CreateProject(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// UpdateProject handles PUT /api/projects/{id}.
func (h *TrackerHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.svc.UpdateProject(r.Context(), r.PathValue("id"), tracker.ProjectPatch{
		Name:     req.Name,
		Status:   req.Status,
		Progress: req.Progress,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// ListIdeas handles GET /api/ideas.
func (h *TrackerHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListIdeas(r.Context()))
}

// CreateIdea handles POST /api/ideas.
func (h *TrackerHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req ideaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	idea, err := h.svc.CreateIdea(r.Context(), tracker.CreateIdeaInput{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, idea)
}

// ListReviews handles GET /api/reviews.
func (h *TrackerHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListReviews(r.Context()))
}

// CreateReview handles POST /api/reviews.
func (h *TrackerHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.svc.CreateReview(r.Context(), tracker.CreateReviewInput{
		Title: req.Title,
		Wins:  req.Wins,
		Focus: req.Focus,
		Notes: req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// ListCheckins handles GET /api/checkins.
func (h *TrackerHandler) ListCheckins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListCheckins(r.Context()))
}

// CreateCheckin handles POST /api/checkins.
func (h *TrackerHandler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkin, err := h.svc.CreateCheckin(r.Context(), tracker.CreateCheckinInput{
		Energy: req.Energy,
		Focus:  req.Focus,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkin)
}

// ListTokenLogs handles GET /api/tokens.
func (h *TrackerHandler) ListTokenLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListTokenLogs(r.Context()))
}

// CreateTokenLog handles POST /api/tokens.
func (h *TrackerHandler) CreateTokenLog(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tok, err := h.svc.CreateTokenLog(r.Context(), tracker.CreateTokenLogInput{
		Cost:     req.Cost,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, tok)
}
