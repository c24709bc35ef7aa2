package services

import (
	"context"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"
)

type DashboardStats struct {
	Properties   int64 `json:"properties"`
	Clients      int64 `json:"clients"`
	NewsItems    int64 `json:"newsItems"`
	Inquiries    int64 `json:"inquiries"`
	NewInquiries int64 `json:"newInquiries"`
	Agents       int64 `json:"agents"`
}

type DashboardService struct {
	properties repositories.PropertyRepository
	clients    repositories.ClientRepository
	news       repositories.NewsRepository
	inquiries  repositories.InquiryRepository
	users      repositories.UserRepository
}

func NewDashboardService(
	properties repositories.PropertyRepository,
	clients repositories.ClientRepository,
	news repositories.NewsRepository,
	inquiries repositories.InquiryRepository,
	users repositories.UserRepository,
) *DashboardService {
	return &DashboardService{
		properties: properties,
		clients:    clients,
		news:       news,
		inquiries:  inquiries,
		users:      users,
	}
}

// Stats gathers the admin dashboard counters. Each count is an independent
// read; there is no cross-entity consistency requirement.
func (s *DashboardService) Stats(ctx context.Context, principal policy.Principal) (*DashboardStats, error) {
	if ok, _ := policy.ViewDashboard.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}

	stats := &DashboardStats{}
	var err error
	if stats.Properties, err = s.properties.Count(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.Clients, err = s.clients.Count(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.NewsItems, err = s.news.Count(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.Inquiries, err = s.inquiries.Count(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.NewInquiries, err = s.inquiries.CountByStatus(ctx, models.InquiryNew); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.Agents, err = s.users.CountByRole(ctx, models.RoleAgent); err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}
