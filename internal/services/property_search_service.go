package services

import (
	"context"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repositories"
	"estatedesk-backend/pkg/logger"
	"estatedesk-backend/pkg/metrics"
)

const listCacheTTL = 5 * time.Minute

// PropertySearchService owns the read path: translate a parsed filter into
// the data + count queries and assemble pagination metadata.
type PropertySearchService struct {
	repo  repositories.PropertyRepository
	cache repositories.PropertyCache
}

func NewPropertySearchService(repo repositories.PropertyRepository, cache repositories.PropertyCache) *PropertySearchService {
	return &PropertySearchService{repo: repo, cache: cache}
}

// Search executes the filtered, sorted, windowed query plus the independent
// count. Purely read-only; identical filters with no intervening writes
// return identical results.
func (s *PropertySearchService) Search(ctx context.Context, filter models.PropertyFilter) (*models.PaginatedPropertiesResponse, error) {
	cacheKey := filter.CacheKey()
	if s.cache != nil {
		if cached, err := s.cache.GetList(ctx, cacheKey); err == nil && cached != nil {
			metrics.CacheHitsTotal.Inc()
			return cached, nil
		}
		metrics.CacheMissesTotal.Inc()
	}

	properties, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		logger.GlobalLogger.Errorf("Property search failed: filter=%s, error=%v", cacheKey, err)
		return nil, err
	}

	pages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		pages++
	}

	response := &models.PaginatedPropertiesResponse{
		Success: true,
		Data:    properties,
		Pagination: models.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: pages,
		},
		Total: total,
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, cacheKey, response, listCacheTTL); err != nil {
			logger.GlobalLogger.Debugf("Failed to cache property list: key=%s, error=%v", cacheKey, err)
		}
	}
	return response, nil
}
