package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListClients returns all clients in insertion order.
func (s *Service) ListClients(ctx context.Context) []*domain.Client {
	return s.store.Clients.List(ctx)
}

// CreateClient creates a client. An empty status defaults to "active".
func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (*domain.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	status := in.Status
	if status == "" {
		status = "active"
	}

	client, err := s.store.Clients.Append(ctx, &domain.Client{
		Name:   in.Name,
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("append client: %w", err)
	}

	s.mirrorClient(ctx, client)
	s.rec.Record(ctx, fmt.Sprintf("New Client: %s", client.Name))
	return client, nil
}

// UpdateClient applies a partial update to the client with the given id.
func (s *Service) UpdateClient(ctx context.Context, id string, patch ClientPatch) (*domain.Client, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	client, err := s.store.Clients.Update(ctx, id, func(c *domain.Client) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
	})
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.mirrorClient(ctx, client)
	s.rec.Record(ctx, fmt.Sprintf("Client Updated: %s", client.Name))
	return client, nil
}

// DeleteClient removes the client with the given id.
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	found, err := s.store.Clients.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if !found {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	if s.mirror != nil {
		if err := s.mirror.DeleteClient(ctx, id); err != nil {
			s.log.WarnContext(ctx, "mirror client delete", slog.String("error", err.Error()))
		}
	}
	s.rec.Record(ctx, "Client Removed")
	return nil
}

func (s *Service) mirrorClient(ctx context.Context, c *domain.Client) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.UpsertClient(ctx, c.ID, c.Name, c.Status); err != nil {
		s.log.WarnContext(ctx, "mirror client upsert", slog.String("error", err.Error()))
	}
}
