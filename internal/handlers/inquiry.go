package handlers

import (
	"net/http"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

type InquiryRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message" binding:"required"`
	PropertyID *uint  `json:"propertyId"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitInquiry is the public contact endpoint; no authentication required.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	inquiry := &models.Inquiry{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
	}
	if err := h.inquiryService.Submit(c.Request.Context(), inquiry); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	inquiries, err := h.inquiryService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, inquiries)
}

func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation(err.Error(), err))
		return
	}

	if err := h.inquiryService.UpdateStatus(c.Request.Context(), principal, id, models.InquiryStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "inquiry updated"})
}
