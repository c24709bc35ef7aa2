package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	apperrors "estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler stores property images on local disk and records them as a
// dependent collection of the property. Upload is a separate operation from
// property creation; a failure here leaves the property committed without
// the new images.
type UploadHandler struct {
	propertyService *services.PropertyService
	uploadsDir      string
	baseURL         string
}

func NewUploadHandler(propertyService *services.PropertyService, uploadsDir, baseURL string) *UploadHandler {
	return &UploadHandler{propertyService: propertyService, uploadsDir: uploadsDir, baseURL: baseURL}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func (h *UploadHandler) UploadPropertyImages(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, apperrors.Validation("multipart form required", err))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, apperrors.Validation("at least one image file is required", nil))
		return
	}

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		respondError(c, apperrors.Internal(err))
		return
	}

	images := make([]models.PropertyImage, 0, len(files))
	for i, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			respondError(c, apperrors.Validation("only jpg, jpeg, png and webp files are allowed", nil))
			return
		}

		filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
		destination := filepath.Join(h.uploadsDir, filename)
		if err := c.SaveUploadedFile(file, destination); err != nil {
			respondError(c, apperrors.Internal(err))
			return
		}

		images = append(images, models.PropertyImage{
			URL:       fmt.Sprintf("%s/%s", h.baseURL, filename),
			SortOrder: i,
		})
	}

	property, err := h.propertyService.AddImages(c.Request.Context(), principal, propertyID, images)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, property)
}
