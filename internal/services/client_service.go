package services

import (
	"context"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"
	"estatedesk-backend/internal/validators"
)

// ClientService scopes every operation by the principal's own agent id. A
// client owned by another agent is reported as not found, never forbidden,
// so record existence does not leak across agents.
type ClientService struct {
	repo      repositories.ClientRepository
	validator validators.ClientValidator
}

func NewClientService(repo repositories.ClientRepository, validator validators.ClientValidator) *ClientService {
	return &ClientService{repo: repo, validator: validator}
}

func (s *ClientService) List(ctx context.Context, principal policy.Principal) ([]models.Client, error) {
	if ok, _ := policy.ManageClients.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	clients, err := s.repo.FindAllByAgent(ctx, principal.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return clients, nil
}

// ListForAgent serves the path-scoped listing: accessible to the matching
// agent themself or any admin, rejected with 403 for everyone else.
func (s *ClientService) ListForAgent(ctx context.Context, principal policy.Principal, agentID uint) ([]models.Client, error) {
	if ok, _ := policy.ManageClients.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	if !policy.CanAccessAgentScope(principal, agentID) {
		return nil, apperrors.Forbidden()
	}
	clients, err := s.repo.FindAllByAgent(ctx, agentID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return clients, nil
}

func (s *ClientService) Create(ctx context.Context, principal policy.Principal, client *models.Client) error {
	if ok, _ := policy.ManageClients.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	if err := s.validator.ValidateSave(client); err != nil {
		return err
	}

	client.AgentID = principal.ID
	if client.Status == "" {
		client.Status = "active"
	}
	if err := s.repo.Create(ctx, client); err != nil {
		// Per-agent duplicate emails surface as a unique index violation.
		return apperrors.MapError(err)
	}
	return nil
}

func (s *ClientService) Update(ctx context.Context, principal policy.Principal, id uint, client *models.Client) (*models.Client, error) {
	if ok, _ := policy.ManageClients.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	if err := s.validator.ValidateSave(client); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByIDForAgent(ctx, id, principal.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("client")
	}

	client.ID = id
	client.AgentID = principal.ID
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.repo.FindByIDForAgent(ctx, id, principal.ID)
}

func (s *ClientService) Delete(ctx context.Context, principal policy.Principal, id uint) error {
	if ok, _ := policy.ManageClients.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	deleted, err := s.repo.Delete(ctx, id, principal.ID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !deleted {
		return apperrors.NotFound("client")
	}
	return nil
}
