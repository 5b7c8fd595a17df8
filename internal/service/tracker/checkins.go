package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListCheckins returns all daily check-ins in insertion order.
func (s *Service) ListCheckins(ctx context.Context) []*domain.Checkin {
	return s.store.Checkins.List(ctx)
}

// CreateCheckin records a daily check-in, stamped with today's date.
func (s *Service) CreateCheckin(ctx context.Context, in CreateCheckinInput) (*domain.Checkin, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	checkin, err := s.store.Checkins.Append(ctx, &domain.Checkin{
		Date:   domain.DateStamp(time.Now()),
		Energy: in.Energy,
		Focus:  in.Focus,
	})
	if err != nil {
		return nil, fmt.Errorf("append checkin: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Daily Checkin: Energy %d/10, Focus %d/10", checkin.Energy, checkin.Focus))
	return checkin, nil
}
