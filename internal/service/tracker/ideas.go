package tracker

import (
	"context"
	"fmt"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListIdeas returns all ideas in insertion order.
func (s *Service) ListIdeas(ctx context.Context) []*domain.Idea {
	return s.store.Ideas.List(ctx)
}

// CreateIdea creates an idea. An empty status defaults to "draft".
func (s *Service) CreateIdea(ctx context.Context, in CreateIdeaInput) (*domain.Idea, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	status := in.Status
	if status == "" {
		status = "draft"
	}

	idea, err := s.store.Ideas.Append(ctx, &domain.Idea{
		Title:  in.Title,
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("append idea: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("New Idea: %s", idea.Title))
	return idea, nil
}
