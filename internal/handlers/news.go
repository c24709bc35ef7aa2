package handlers

import (
	"net/http"
	"time"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

type NewsRequest struct {
	Title     string     `json:"title" binding:"required"`
	Body      string     `json:"body"`
	Category  string     `json:"category"`
	EventDate *time.Time `json:"eventDate"`
	Published bool       `json:"published"`
}

func (r *NewsRequest) toModel() *models.News {
	return &models.News{
		Title:     r.Title,
		Body:      r.Body,
		Category:  models.NewsCategory(r.Category),
		EventDate: r.EventDate,
		Published: r.Published,
	}
}

// ListNews returns published items for visitors; admins get drafts as well.
func (h *NewsHandler) ListNews(c *gin.Context) {
	items, err := h.newsService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, items)
}

func (h *NewsHandler) ListAllNews(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	items, err := h.newsService.ListAll(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, items)
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	news := req.toModel()
	if err := h.newsService.Create(c.Request.Context(), principal, news); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, news)
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	news, err := h.newsService.Update(c.Request.Context(), principal, id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, news)
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "news item deleted"})
}
