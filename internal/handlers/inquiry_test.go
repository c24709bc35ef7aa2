package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatedesk-backend/internal/models"
)

func TestSubmitInquiryPublic(t *testing.T) {
	db := setupTestDB(t)
	owner := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	property := models.Property{Title: "Listed", Price: 100, Type: models.TypeHouse, Status: models.StatusForSale, Location: "X", UserID: owner.ID}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	router := newTestRouter(t, db)

	// Property inquiry, no token at all.
	body := fmt.Sprintf(`{"name":"Visitor","email":"v@example.com","message":"Is it available?","propertyId":%d}`, property.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var stored models.Inquiry
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Status != models.InquiryNew {
		t.Fatalf("new inquiries must start as new, got %s", stored.Status)
	}
	if stored.PropertyID == nil || *stored.PropertyID != property.ID {
		t.Fatalf("property reference lost: %+v", stored.PropertyID)
	}

	// Plain contact form without a property reference.
	req = httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(
		`{"name":"Visitor","email":"v@example.com","message":"General question"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("contact form: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// Referencing a missing property is rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(
		`{"name":"Visitor","email":"v@example.com","message":"Ghost listing","propertyId":99999}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing property, got %d", w.Code)
	}
}

func TestInquiryAdminFlow(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	agent := seedAccount(t, db, "agent@example.com", models.RoleAgent)
	inquiry := models.Inquiry{Name: "V", Email: "v@example.com", Message: "Hi", Status: models.InquiryNew}
	if err := db.Create(&inquiry).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(t, db)

	// Listing is admin-only.
	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", bearerToken(t, agent))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for agent, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
	var resp struct {
		Data []models.Inquiry `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 inquiry, got %d", len(resp.Data))
	}

	// Status transition.
	target := "/api/inquiries/" + uintToStr(inquiry.ID) + "/status"
	req = httptest.NewRequest(http.MethodPatch, target, strings.NewReader(`{"status":"read"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var stored models.Inquiry
	if err := db.First(&stored, inquiry.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Status != models.InquiryRead {
		t.Fatalf("status not updated: %s", stored.Status)
	}

	// Unknown status value.
	req = httptest.NewRequest(http.MethodPatch, target, strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}
