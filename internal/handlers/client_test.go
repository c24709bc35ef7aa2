package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatedesk-backend/internal/models"

	"gorm.io/gorm"
)

func seedClient(t *testing.T, db *gorm.DB, agentID uint, email string) models.Client {
	t.Helper()
	c := models.Client{AgentID: agentID, Name: "Client", Email: email}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func TestClientCrossAgentAccessReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)
	agentA := seedAccount(t, db, "a@example.com", models.RoleAgent)
	agentB := seedAccount(t, db, "b@example.com", models.RoleAgent)
	client := seedClient(t, db, agentA.ID, "jane@example.com")
	router := newTestRouter(t, db)

	body := `{"name":"Renamed","email":"jane@example.com"}`

	// Another agent updating the row gets 404, not 403: existence must not
	// leak across agents.
	req := httptest.NewRequest(http.MethodPut, "/api/agent/clients/"+uintToStr(client.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, agentB))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-agent update, got %d body=%s", w.Code, w.Body.String())
	}

	// Same for delete.
	req = httptest.NewRequest(http.MethodDelete, "/api/agent/clients/"+uintToStr(client.ID), nil)
	req.Header.Set("Authorization", bearerToken(t, agentB))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-agent delete, got %d", w.Code)
	}

	// The row survives untouched.
	var stored models.Client
	if err := db.First(&stored, client.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Name != "Client" {
		t.Fatalf("cross-agent request modified the row: %+v", stored)
	}
}

func TestClientListScopedToPrincipal(t *testing.T) {
	db := setupTestDB(t)
	agentA := seedAccount(t, db, "a@example.com", models.RoleAgent)
	agentB := seedAccount(t, db, "b@example.com", models.RoleAgent)
	seedClient(t, db, agentA.ID, "one@example.com")
	seedClient(t, db, agentA.ID, "two@example.com")
	seedClient(t, db, agentB.ID, "three@example.com")
	router := newTestRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/agent/clients", nil)
	req.Header.Set("Authorization", bearerToken(t, agentA))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Success bool            `json:"success"`
		Data    []models.Client `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 own clients, got %d", len(resp.Data))
	}
	for _, c := range resp.Data {
		if c.AgentID != agentA.ID {
			t.Fatalf("foreign client leaked into listing: %+v", c)
		}
	}
}

func TestClientPathScopedListing(t *testing.T) {
	db := setupTestDB(t)
	agentA := seedAccount(t, db, "a@example.com", models.RoleAgent)
	agentB := seedAccount(t, db, "b@example.com", models.RoleAgent)
	admin := seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	seedClient(t, db, agentA.ID, "one@example.com")
	router := newTestRouter(t, db)
	target := "/api/agents/" + uintToStr(agentA.ID) + "/clients"

	// The matching agent may read their own scope.
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", bearerToken(t, agentA))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for matching agent, got %d", w.Code)
	}

	// A different agent naming the scope explicitly gets 403, not an empty
	// list and not 404.
	req = httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", bearerToken(t, agentB))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign scope, got %d body=%s", w.Code, w.Body.String())
	}

	// Admin may read any scope.
	req = httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", bearerToken(t, admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}

func TestClientDuplicateEmailScopedPerAgent(t *testing.T) {
	db := setupTestDB(t)
	agentA := seedAccount(t, db, "a@example.com", models.RoleAgent)
	agentB := seedAccount(t, db, "b@example.com", models.RoleAgent)
	router := newTestRouter(t, db)

	body := `{"name":"Jane","email":"jane@example.com"}`
	post := func(u models.User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/agent/clients", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, u))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := post(agentA); w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	// Same email under another agent is fine.
	if w := post(agentB); w.Code != http.StatusCreated {
		t.Fatalf("other agent create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	// Same agent again hits the per-agent unique index.
	w := post(agentA)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT code, got %s", resp.Error.Code)
	}
}

func TestClientRoutesRejectPlainUsers(t *testing.T) {
	db := setupTestDB(t)
	user := seedAccount(t, db, "user@example.com", models.RoleUser)
	router := newTestRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/agent/clients", nil)
	req.Header.Set("Authorization", bearerToken(t, user))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for USER role, got %d", w.Code)
	}
}
