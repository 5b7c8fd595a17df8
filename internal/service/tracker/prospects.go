package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListProspects returns all prospects in insertion order.
func (s *Service) ListProspects(ctx context.Context) []*domain.Prospect {
	return s.store.Prospects.List(ctx)
}

// CreateProspect creates a prospect. An empty stage defaults to "lead".
func (s *Service) CreateProspect(ctx context.Context, in CreateProspectInput) (*domain.Prospect, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	stage := in.Stage
	if stage == "" {
		stage = domain.ProspectStageLead
	}

	prospect, err := s.store.Prospects.Append(ctx, &domain.Prospect{
		Name:       in.Name,
		Stage:      stage,
		NextAction: in.NextAction,
	})
	if err != nil {
		return nil, fmt.Errorf("append prospect: %w", err)
	}

	s.mirrorProspect(ctx, prospect)
	s.rec.Record(ctx, fmt.Sprintf("New Prospect: %s (%s)", prospect.Name, prospect.Stage))
	return prospect, nil
}

// UpdateProspect applies a partial update to the prospect with the given id.
func (s *Service) UpdateProspect(ctx context.Context, id string, patch ProspectPatch) (*domain.Prospect, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	prospect, err := s.store.Prospects.Update(ctx, id, func(p *domain.Prospect) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Stage != nil {
			p.Stage = *patch.Stage
		}
		if patch.NextAction != nil {
			p.NextAction = *patch.NextAction
		}
	})
	if err != nil {
		return nil, fmt.Errorf("update prospect: %w", err)
	}

	s.mirrorProspect(ctx, prospect)
	s.rec.Record(ctx, fmt.Sprintf("Prospect Updated: %s", prospect.Name))
	return prospect, nil
}

func (s *Service) mirrorProspect(ctx context.Context, p *domain.Prospect) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.UpsertProspect(ctx, p.ID, p.Name, string(p.Stage), p.NextAction); err != nil {
		s.log.WarnContext(ctx, "mirror prospect upsert", slog.String("error", err.Error()))
	}
}
