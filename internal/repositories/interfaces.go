package repositories

import (
	"context"
	"time"

	"estatedesk-backend/internal/models"
)

type PropertyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	Search(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int64, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uint) error
	AddImages(ctx context.Context, propertyID uint, images []models.PropertyImage) error
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// ClientRepository scopes every lookup by agent id; a row belonging to another
// agent behaves exactly like a missing row.
type ClientRepository interface {
	FindByIDForAgent(ctx context.Context, id, agentID uint) (*models.Client, error)
	FindAllByAgent(ctx context.Context, agentID uint) ([]models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id, agentID uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type NewsRepository interface {
	FindByID(ctx context.Context, id uint) (*models.News, error)
	FindPublished(ctx context.Context) ([]models.News, error)
	FindAll(ctx context.Context) ([]models.News, error)
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type InquiryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Inquiry, error)
	FindAll(ctx context.Context) ([]models.Inquiry, error)
	Create(ctx context.Context, inquiry *models.Inquiry) error
	UpdateStatus(ctx context.Context, id uint, status models.InquiryStatus) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.InquiryStatus) (int64, error)
}

type PropertyCache interface {
	GetList(ctx context.Context, key string) (*models.PaginatedPropertiesResponse, error)
	SetList(ctx context.Context, key string, response *models.PaginatedPropertiesResponse, expiration time.Duration) error
	InvalidateLists(ctx context.Context) error
}
