package services

import (
	"context"

	"estatedesk-backend/internal/auth"
	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"
	"estatedesk-backend/internal/validators"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	jwtSecret string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string) *UserService {
	return &UserService{repo: repo, validator: validator, jwtSecret: jwtSecret}
}

// Register creates a self-service account. The role is always USER; elevated
// accounts are created by an admin through CreateUser.
func (s *UserService) Register(ctx context.Context, user *models.User, password string) (*auth.TokenDetails, error) {
	user.Role = models.RoleUser
	if err := s.createWithPassword(ctx, user, password); err != nil {
		return nil, err
	}

	tokenDetails, err := auth.GenerateJWT(user.ID, user.Role, user.Email, s.jwtSecret)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return tokenDetails, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("unknown email")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("password mismatch")
	}

	tokenDetails, err := auth.GenerateJWT(user.ID, user.Role, user.Email, s.jwtSecret)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return tokenDetails, nil
}

// CreateUser is the admin-managed account creation path; any role may be set.
func (s *UserService) CreateUser(ctx context.Context, principal policy.Principal, user *models.User, password string) error {
	if ok, _ := policy.ManageUsers.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	return s.createWithPassword(ctx, user, password)
}

func (s *UserService) ListUsers(ctx context.Context, principal policy.Principal) ([]models.User, error) {
	if ok, _ := policy.ManageUsers.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// DeleteUser rejects removing the last remaining admin so the system is never
// left without one.
func (s *UserService) DeleteUser(ctx context.Context, principal policy.Principal, id uint) error {
	if ok, _ := policy.ManageUsers.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if user == nil {
		return apperrors.NotFound("user")
	}

	if user.Role == models.RoleAdmin {
		admins, err := s.repo.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return apperrors.Internal(err)
		}
		if admins <= 1 {
			return apperrors.Conflict(apperrors.MsgLastAdmin, nil)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ToggleAgentStatus flips the isActive flag of an AGENT account. Only agents
// carry activation semantics, and an admin cannot toggle their own account.
func (s *UserService) ToggleAgentStatus(ctx context.Context, principal policy.Principal, id uint) (*models.User, error) {
	if ok, _ := policy.ManageUsers.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	if id == principal.ID {
		return nil, apperrors.Validation("cannot change the status of your own account", nil)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user")
	}
	if user.Role != models.RoleAgent {
		return nil, apperrors.Validation("status can only be toggled for agent accounts", nil)
	}

	user.IsActive = !user.IsActive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

func (s *UserService) createWithPassword(ctx context.Context, user *models.User, password string) error {
	if err := s.validator.ValidateRegister(user, password); err != nil {
		return err
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return apperrors.Internal(err)
	}
	if existing != nil {
		return apperrors.Conflict(apperrors.MsgDuplicateEmail, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err)
	}
	user.Password = string(hashed)
	user.IsActive = true

	if err := s.repo.Create(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
