package repositories

import (
	"context"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/cache"
)

type propertyCache struct{}

func NewPropertyCache() PropertyCache {
	return &propertyCache{}
}

func (c *propertyCache) GetList(ctx context.Context, key string) (*models.PaginatedPropertiesResponse, error) {
	var response models.PaginatedPropertiesResponse
	if err := cache.Get(ctx, cache.PropertyListKey(key), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *propertyCache) SetList(ctx context.Context, key string, response *models.PaginatedPropertiesResponse, expiration time.Duration) error {
	listKey := cache.PropertyListKey(key)
	if err := cache.Set(ctx, listKey, response, expiration); err != nil {
		return err
	}
	return cache.AddKeyToListSet(ctx, listKey)
}

func (c *propertyCache) InvalidateLists(ctx context.Context) error {
	return cache.InvalidateListCache(ctx)
}
