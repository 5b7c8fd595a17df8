package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListReviews returns all weekly reviews in insertion order.
func (s *Service) ListReviews(ctx context.Context) []*domain.WeeklyReview {
	return s.store.Reviews.List(ctx)
}

// CreateReview records a weekly review, stamped with the current week number.
func (s *Service) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.WeeklyReview, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	review, err := s.store.Reviews.Append(ctx, &domain.WeeklyReview{
		Title: in.Title,
		Week:  domain.WeekNumber(time.Now()),
		Wins:  in.Wins,
		Focus: in.Focus,
		Notes: in.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("append review: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Weekly Review: %s", review.Title))
	return review, nil
}
