package validators

import "estatedesk-backend/internal/models"

type PropertyValidator interface {
	ValidateCreate(property *models.Property) error
	ValidateUpdate(property *models.Property) error
}

type UserValidator interface {
	ValidateRegister(user *models.User, password string) error
	ValidateLogin(email, password string) error
}

type ClientValidator interface {
	ValidateSave(client *models.Client) error
}
