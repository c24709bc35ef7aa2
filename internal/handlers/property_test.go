package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"estatedesk-backend/internal/models"

	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB, ownerID uint) []models.Property {
	t.Helper()
	rows := []models.Property{
		{Title: "Budget Villa", Price: 4500000, Type: models.TypeVilla, Status: models.StatusForSale, Location: "Hillside", Bedrooms: 3, UserID: ownerID},
		{Title: "Lakeside Villa", Price: 7200000, Type: models.TypeVilla, Status: models.StatusForSale, Location: "Lakeside", Bedrooms: 4, UserID: ownerID},
		{Title: "Hilltop Villa", Price: 8500000, Type: models.TypeVilla, Status: models.StatusForSale, Location: "Hilltop", Bedrooms: 5, UserID: ownerID},
		{Title: "City Apartment", Price: 6000000, Type: models.TypeApartment, Status: models.StatusForSale, Location: "Downtown", Bedrooms: 2, UserID: ownerID},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed %q: %v", rows[i].Title, err)
		}
	}
	return rows
}

func TestGetPropertiesCombinedFilters(t *testing.T) {
	db := setupTestDB(t)
	owner := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	seedCatalog(t, db, owner.ID)
	router := newTestRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/properties?type=Villa&priceMin=5000000&priceMax=9000000&sort=price-low&page=1&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var resp models.PaginatedPropertiesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope")
	}
	if resp.Total != 2 || resp.Pagination.Total != 2 {
		t.Fatalf("expected total=2, got %d/%d", resp.Total, resp.Pagination.Total)
	}
	if resp.Pagination.Pages != 1 {
		t.Fatalf("expected pages=1, got %d", resp.Pagination.Pages)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Data))
	}
	if resp.Data[0].Price != 7200000 || resp.Data[1].Price != 8500000 {
		t.Fatalf("expected prices [7200000 8500000], got [%v %v]", resp.Data[0].Price, resp.Data[1].Price)
	}
}

func TestGetPropertiesMalformedParamsIgnored(t *testing.T) {
	db := setupTestDB(t)
	owner := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	seedCatalog(t, db, owner.ID)
	router := newTestRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/properties?priceMin=abc&bedrooms=many&page=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("malformed params must not fail the request, got %d", w.Code)
	}
	var resp models.PaginatedPropertiesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 4 {
		t.Fatalf("expected the unfiltered catalog, got total=%d", resp.Total)
	}
	if resp.Pagination.Page != models.DefaultPage || resp.Pagination.Limit != models.DefaultLimit {
		t.Fatalf("expected default pagination, got page=%d limit=%d", resp.Pagination.Page, resp.Pagination.Limit)
	}
}

func TestCreatePropertyRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	agent := seedAccount(t, db, "agent@example.com", models.RoleAgent)
	admin := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	router := newTestRouter(t, db)

	body := `{"title":"New Villa","price":1000000,"type":"villa","status":"for-sale","location":"Coast"}`

	// No token: 401.
	req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// Agent token: 403.
	req = httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, agent))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for agent, got %d body=%s", w.Code, w.Body.String())
	}

	// Admin token: created, owner taken from the principal.
	req = httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d body=%s", w.Code, w.Body.String())
	}

	var stored models.Property
	if err := db.Where("title = ?", "New Villa").First(&stored).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.UserID != admin.ID {
		t.Fatalf("owner must come from the principal, got %d", stored.UserID)
	}
	if stored.PriceType != models.PriceTotal {
		t.Fatalf("expected default price type, got %s", stored.PriceType)
	}
}

func TestDeletePropertyOwnershipOrAdmin(t *testing.T) {
	db := setupTestDB(t)
	ownerAdmin := seedAccount(t, db, "owner@example.com", models.RoleAdmin)
	otherAdmin := seedAccount(t, db, "other@example.com", models.RoleAdmin)
	agent := seedAccount(t, db, "agent@example.com", models.RoleAgent)
	rows := seedCatalog(t, db, ownerAdmin.ID)
	router := newTestRouter(t, db)
	target := "/api/properties/" + uintToStr(rows[0].ID)

	// Agent fails the role gate even for someone else's row.
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set("Authorization", bearerToken(t, agent))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for agent, got %d", w.Code)
	}

	// A different admin passes via the admin bypass.
	req = httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set("Authorization", bearerToken(t, otherAdmin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin bypass, got %d body=%s", w.Code, w.Body.String())
	}

	// The row is gone; deleting again is 404.
	req = httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set("Authorization", bearerToken(t, ownerAdmin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing row, got %d", w.Code)
	}
}

func TestGetPropertyByID(t *testing.T) {
	db := setupTestDB(t)
	owner := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	rows := seedCatalog(t, db, owner.ID)
	router := newTestRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+uintToStr(rows[1].ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/properties/99999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func uintToStr(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
