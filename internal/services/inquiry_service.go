package services

import (
	"context"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"
)

type InquiryService struct {
	inquiries  repositories.InquiryRepository
	properties repositories.PropertyRepository
}

func NewInquiryService(inquiries repositories.InquiryRepository, properties repositories.PropertyRepository) *InquiryService {
	return &InquiryService{inquiries: inquiries, properties: properties}
}

// Submit accepts a public contact-form or property inquiry. No authentication
// is required; a referenced property must exist.
func (s *InquiryService) Submit(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.Name == "" || inquiry.Email == "" || inquiry.Message == "" {
		return apperrors.Validation("name, email and message are required", nil)
	}

	if inquiry.PropertyID != nil {
		property, err := s.properties.FindByID(ctx, *inquiry.PropertyID)
		if err != nil {
			return apperrors.Internal(err)
		}
		if property == nil {
			return apperrors.NotFound("property")
		}
	}

	inquiry.Status = models.InquiryNew
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *InquiryService) List(ctx context.Context, principal policy.Principal) ([]models.Inquiry, error) {
	if ok, _ := policy.ViewInquiries.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	items, err := s.inquiries.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

func (s *InquiryService) UpdateStatus(ctx context.Context, principal policy.Principal, id uint, status models.InquiryStatus) error {
	if ok, _ := policy.ViewInquiries.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	switch status {
	case models.InquiryNew, models.InquiryRead, models.InquiryClosed:
	default:
		return apperrors.Validation("unknown inquiry status", nil)
	}

	updated, err := s.inquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !updated {
		return apperrors.NotFound("inquiry")
	}
	return nil
}
