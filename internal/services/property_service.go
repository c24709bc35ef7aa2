package services

import (
	"context"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"
	"estatedesk-backend/internal/validators"
	"estatedesk-backend/pkg/logger"
)

type PropertyService struct {
	repo      repositories.PropertyRepository
	cache     repositories.PropertyCache
	validator validators.PropertyValidator
}

func NewPropertyService(repo repositories.PropertyRepository, cache repositories.PropertyCache, validator validators.PropertyValidator) *PropertyService {
	return &PropertyService{repo: repo, cache: cache, validator: validator}
}

func (s *PropertyService) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if property == nil {
		return nil, apperrors.NotFound("property")
	}
	return property, nil
}

func (s *PropertyService) Create(ctx context.Context, principal policy.Principal, property *models.Property) error {
	if ok, _ := policy.ManageProperties.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	if err := s.validator.ValidateCreate(property); err != nil {
		return err
	}

	property.UserID = principal.ID
	if property.PriceType == "" {
		property.PriceType = models.PriceTotal
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return apperrors.MapError(err)
	}
	s.invalidateLists(ctx)
	return nil
}

func (s *PropertyService) Update(ctx context.Context, principal policy.Principal, id uint, property *models.Property) (*models.Property, error) {
	if ok, _ := policy.ManageProperties.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	if err := s.validator.ValidateUpdate(property); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("property")
	}

	property.ID = id
	if err := s.repo.Update(ctx, property); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateLists(ctx)
	return s.GetByID(ctx, id)
}

// Delete enforces the ownership-or-admin rule on top of the admin role gate.
// Ownership compares against the authenticated principal's id.
func (s *PropertyService) Delete(ctx context.Context, principal policy.Principal, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if existing == nil {
		return apperrors.NotFound("property")
	}

	if ok, _ := policy.DeleteProperty.Check(principal, existing); !ok {
		return apperrors.Forbidden()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	s.invalidateLists(ctx)
	return nil
}

// AddImages attaches uploaded image records to an existing property. This is
// a separate operation from property creation; a failure here leaves the
// property committed without the new images.
func (s *PropertyService) AddImages(ctx context.Context, principal policy.Principal, propertyID uint, images []models.PropertyImage) (*models.Property, error) {
	if ok, _ := policy.ManageProperties.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}

	existing, err := s.repo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("property")
	}

	if err := s.repo.AddImages(ctx, propertyID, images); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateLists(ctx)
	return s.GetByID(ctx, propertyID)
}

func (s *PropertyService) invalidateLists(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLists(ctx); err != nil {
		logger.GlobalLogger.Debugf("Failed to invalidate property list cache: %v", err)
	}
}
