package tracker

import (
	"context"
	"fmt"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListProjects returns all projects in insertion order.
func (s *Service) ListProjects(ctx context.Context) []*domain.Project {
	return s.store.Projects.List(ctx)
}

// CreateProject creates a project. An empty status defaults to "active" and
// an omitted progress to 0.
func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	status := in.Status
	if status == "" {
		status = "active"
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
	}

	project, err := s.store.Projects.Append(ctx, &domain.Project{
		Name:     in.Name,
		Status:   status,
		Progress: progress,
	})
	if err != nil {
		return nil, fmt.Errorf("append project: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("New Project: %s", project.Name))
	return project, nil
}

// UpdateProject applies a partial update to the project with the given id.
func (s *Service) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	project, err := s.store.Projects.Update(ctx, id, func(p *domain.Project) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
	})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Project Updated: %s", project.Name))
	return project, nil
}
