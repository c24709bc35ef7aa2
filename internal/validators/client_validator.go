package validators

import (
	"strings"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
)

type clientValidator struct{}

func NewClientValidator() ClientValidator {
	return &clientValidator{}
}

func (v *clientValidator) ValidateSave(client *models.Client) error {
	if client.Name == "" {
		return apperrors.Validation("client name is required", nil)
	}
	if client.Email == "" || !strings.Contains(client.Email, "@") {
		return apperrors.Validation("a valid client email is required", nil)
	}
	return nil
}
