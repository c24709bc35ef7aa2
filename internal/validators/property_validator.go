package validators

import (
	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

func (v *propertyValidator) ValidateCreate(property *models.Property) error {
	if property.Title == "" || property.Location == "" {
		return apperrors.Validation("title and location are required", nil)
	}
	if property.Price < 0 {
		return apperrors.Validation("price must not be negative", nil)
	}
	return v.validateEnums(property)
}

func (v *propertyValidator) ValidateUpdate(property *models.Property) error {
	return v.ValidateCreate(property)
}

func (v *propertyValidator) validateEnums(property *models.Property) error {
	switch property.Type {
	case models.TypeApartment, models.TypeHouse, models.TypeVilla, models.TypeCommercial, models.TypeLand:
	default:
		return apperrors.Validation("unknown property type", nil)
	}
	switch property.Status {
	case models.StatusForSale, models.StatusForRent, models.StatusSold:
	default:
		return apperrors.Validation("unknown property status", nil)
	}
	switch property.PriceType {
	case "", models.PriceTotal, models.PricePerMonth, models.PricePerYear:
	default:
		return apperrors.Validation("unknown price type", nil)
	}
	return nil
}
