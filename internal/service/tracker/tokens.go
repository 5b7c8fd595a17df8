package tracker

import (
	"context"
	"fmt"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListTokenLogs returns all token-usage logs in insertion order.
func (s *Service) ListTokenLogs(ctx context.Context) []*domain.TokenLog {
	return s.store.Tokens.List(ctx)
}

// CreateTokenLog records a token-usage entry. Token logging is machine
// traffic, so it produces no activity entry.
func (s *Service) CreateTokenLog(ctx context.Context, in CreateTokenLogInput) (*domain.TokenLog, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	tok, err := s.store.Tokens.Append(ctx, &domain.TokenLog{
		Cost:     in.Cost,
		Metadata: in.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("append token log: %w", err)
	}
	return tok, nil
}
