package services

import (
	"context"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"
)

type NewsService struct {
	repo repositories.NewsRepository
}

func NewNewsService(repo repositories.NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

// ListPublished is the public feed; drafts are only visible through ListAll.
func (s *NewsService) ListPublished(ctx context.Context) ([]models.News, error) {
	items, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

func (s *NewsService) ListAll(ctx context.Context, principal policy.Principal) ([]models.News, error) {
	if ok, _ := policy.ManageNews.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

func (s *NewsService) Create(ctx context.Context, principal policy.Principal, news *models.News) error {
	if ok, _ := policy.ManageNews.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	if news.Title == "" {
		return apperrors.Validation("title is required", nil)
	}
	if news.Category == "" {
		news.Category = models.CategoryNews
	}
	news.UserID = principal.ID
	if err := s.repo.Create(ctx, news); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *NewsService) Update(ctx context.Context, principal policy.Principal, id uint, news *models.News) (*models.News, error) {
	if ok, _ := policy.ManageNews.Check(principal, nil); !ok {
		return nil, apperrors.Forbidden()
	}
	if news.Title == "" {
		return nil, apperrors.Validation("title is required", nil)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("news item")
	}

	news.ID = id
	if err := s.repo.Update(ctx, news); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) Delete(ctx context.Context, principal policy.Principal, id uint) error {
	if ok, _ := policy.ManageNews.Check(principal, nil); !ok {
		return apperrors.Forbidden()
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
