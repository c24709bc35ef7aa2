package validators

import (
	"strings"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(user *models.User, password string) error {
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return apperrors.Validation("a valid email is required", nil)
	}
	if user.Name == "" {
		return apperrors.Validation("name is required", nil)
	}
	if len(password) < 6 {
		return apperrors.Validation("password must be at least 6 characters", nil)
	}
	if user.Role != "" && !user.Role.Valid() {
		return apperrors.Validation("unknown role", nil)
	}
	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return apperrors.Validation("email and password are required", nil)
	}
	return nil
}
