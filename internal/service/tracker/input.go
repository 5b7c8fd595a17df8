package tracker

import (
	"strings"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// CreateTaskInput holds the fields for creating a task.
type CreateTaskInput struct {
	Title    string
	Status   domain.TaskStatus
	Priority string
}

func (in CreateTaskInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "is required"})
	}
	if in.Status != "" && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: todo, in-progress, completed"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title    *string
	Status   *domain.TaskStatus
	Priority *string
}

func (p TaskPatch) Validate() error {
	var errs []domain.FieldError
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: todo, in-progress, completed"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateClientInput holds the fields for creating a client.
type CreateClientInput struct {
	Name   string
	Status string
}

func (in CreateClientInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	return nil
}

// ClientPatch carries a partial client update.
type ClientPatch struct {
	Name   *string
	Status *string
}

func (p ClientPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	return nil
}

// CreateProspectInput holds the fields for creating a prospect.
type CreateProspectInput struct {
	Name       string
	Stage      domain.ProspectStage
	NextAction string
}

func (in CreateProspectInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if in.Stage != "" && !in.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be one of: lead, prospect, qualified, closed, closed-lost"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProspectPatch carries a partial prospect update.
type ProspectPatch struct {
	Name       *string
	Stage      *domain.ProspectStage
	NextAction *string
}

func (p ProspectPatch) Validate() error {
	var errs []domain.FieldError
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if p.Stage != nil && !p.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be one of: lead, prospect, qualified, closed, closed-lost"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateProjectInput holds the fields for creating a project.
type CreateProjectInput struct {
	Name     string
	Status   string
	Progress *int
}

func (in CreateProjectInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if in.Progress != nil && (*in.Progress < 0 || *in.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProjectPatch carries a partial project update.
type ProjectPatch struct {
	Name     *string
	Status   *string
	Progress *int
}

func (p ProjectPatch) Validate() error {
	var errs []domain.FieldError
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if p.Progress != nil && (*p.Progress < 0 || *p.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateIdeaInput holds the fields for creating an idea.
type CreateIdeaInput struct {
	Title  string
	Status string
}

func (in CreateIdeaInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	return nil
}

// CreateReviewInput holds the fields for creating a weekly review.
type CreateReviewInput struct {
	Title string
	Wins  string
	Focus string
	Notes string
}

func (in CreateReviewInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	return nil
}

// CreateCheckinInput holds the fields for logging a daily check-in.
type CreateCheckinInput struct {
	Energy int
	Focus  int
}

func (in CreateCheckinInput) Validate() error {
	var errs []domain.FieldError
	if in.Energy < 1 || in.Energy > 10 {
		errs = append(errs, domain.FieldError{Field: "energy", Message: "must be between 1 and 10"})
	}
	if in.Focus < 1 || in.Focus > 10 {
		errs = append(errs, domain.FieldError{Field: "focus", Message: "must be between 1 and 10"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTokenLogInput holds the fields for recording token usage.
type CreateTokenLogInput struct {
	Cost     float64
	Metadata map[string]any
}

func (in CreateTokenLogInput) Validate() error {
	if in.Cost < 0 {
		return domain.NewValidationError("cost", "must not be negative")
	}
	return nil
}
