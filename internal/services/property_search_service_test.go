package services

import (
	"context"
	"testing"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repositories"

	"gorm.io/gorm"
)

type fakePropertyCache struct {
	store map[string]*models.PaginatedPropertiesResponse
	gets  int
	sets  int
}

func newFakePropertyCache() *fakePropertyCache {
	return &fakePropertyCache{store: map[string]*models.PaginatedPropertiesResponse{}}
}

func (c *fakePropertyCache) GetList(ctx context.Context, key string) (*models.PaginatedPropertiesResponse, error) {
	c.gets++
	return c.store[key], nil
}

func (c *fakePropertyCache) SetList(ctx context.Context, key string, response *models.PaginatedPropertiesResponse, expiration time.Duration) error {
	c.sets++
	c.store[key] = response
	return nil
}

func (c *fakePropertyCache) InvalidateLists(ctx context.Context) error {
	c.store = map[string]*models.PaginatedPropertiesResponse{}
	return nil
}

func seedProperties(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	owner := seedUser(t, db, "owner@example.com", models.RoleAdmin)
	for i := 0; i < n; i++ {
		p := models.Property{Title: "P", Price: float64(100 + i), Type: models.TypeHouse, Status: models.StatusForSale, Location: "X", UserID: owner.ID}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestSearchRoundsPagesUp(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db, 7)
	svc := NewPropertySearchService(repositories.NewPropertyRepository(db), nil)

	cases := []struct {
		limit int
		pages int
	}{
		{limit: 2, pages: 4},
		{limit: 3, pages: 3},
		{limit: 7, pages: 1},
		{limit: 10, pages: 1},
	}
	for _, tc := range cases {
		resp, err := svc.Search(context.Background(), models.PropertyFilter{Sort: models.SortNewest, Page: 1, Limit: tc.limit})
		if err != nil {
			t.Fatalf("limit=%d: %v", tc.limit, err)
		}
		if resp.Pagination.Pages != tc.pages {
			t.Fatalf("limit=%d: expected pages=%d, got %d", tc.limit, tc.pages, resp.Pagination.Pages)
		}
		if resp.Total != 7 {
			t.Fatalf("limit=%d: expected total=7, got %d", tc.limit, resp.Total)
		}
	}
}

func TestSearchServesRepeatFromCache(t *testing.T) {
	db := setupTestDB(t)
	seedProperties(t, db, 3)
	cache := newFakePropertyCache()
	svc := NewPropertySearchService(repositories.NewPropertyRepository(db), cache)
	filter := models.PropertyFilter{Sort: models.SortNewest, Page: 1, Limit: 10}

	first, err := svc.Search(context.Background(), filter)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the miss to populate the cache, sets=%d", cache.sets)
	}

	second, err := svc.Search(context.Background(), filter)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("repeat search must not rewrite the cache, sets=%d", cache.sets)
	}
	if second.Total != first.Total || len(second.Data) != len(first.Data) {
		t.Fatalf("cached response diverged: %d/%d vs %d/%d", second.Total, len(second.Data), first.Total, len(first.Data))
	}
}

func TestSearchEmptyResultIsWellFormed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertySearchService(repositories.NewPropertyRepository(db), nil)

	resp, err := svc.Search(context.Background(), models.PropertyFilter{Sort: models.SortNewest, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope")
	}
	if resp.Total != 0 || resp.Pagination.Pages != 0 {
		t.Fatalf("expected empty result, got total=%d pages=%d", resp.Total, resp.Pagination.Pages)
	}
	if resp.Data == nil {
		t.Fatalf("data must be an empty slice, not null")
	}
}
