package handlers

import (
	"net/http"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type ClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes"`
	Status string `json:"status"`
}

func (r *ClientRequest) toModel() *models.Client {
	return &models.Client{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Notes:  r.Notes,
		Status: r.Status,
	}
}

// ListClients serves the unscoped listing: always the caller's own records.
func (h *ClientHandler) ListClients(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, clients)
}

// ListClientsForAgent serves the path-scoped listing, available to the
// matching agent or an admin.
func (h *ClientHandler) ListClientsForAgent(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	agentID, ok := parseIDParam(c, "agentId")
	if !ok {
		return
	}

	clients, err := h.clientService.ListForAgent(c.Request.Context(), principal, agentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, clients)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	client := req.toModel()
	if err := h.clientService.Create(c.Request.Context(), principal, client); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), principal, id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "client deleted"})
}
