package handlers

import (
	"net/http"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
	searchService   *services.PropertySearchService
}

func NewPropertyHandler(propertyService *services.PropertyService, searchService *services.PropertySearchService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, searchService: searchService}
}

// PropertyRequest is the mutation payload. The owner is always taken from
// the authenticated principal, never from the body.
type PropertyRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PriceType   string   `json:"priceType"`
	Type        string   `json:"type" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
}

func (r *PropertyRequest) toModel() *models.Property {
	return &models.Property{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		PriceType:   models.PriceType(r.PriceType),
		Type:        models.PropertyType(r.Type),
		Status:      models.PropertyStatus(r.Status),
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Area:        r.Area,
		Amenities:   r.Amenities,
		Featured:    r.Featured,
	}
}

// GetProperties serves the property search: every query parameter is
// optional, malformed values behave as absent, and the response carries
// pagination metadata computed from an independent count.
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	filter := models.ParsePropertyFilter(c.Request.URL.Query())

	response, err := h.searchService.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, property)
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	property := req.toModel()
	if err := h.propertyService.Create(c.Request.Context(), principal, property); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, property)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), principal, id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "property deleted"})
}
