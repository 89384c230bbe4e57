package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"property-listings-api/internal/auth"
	"property-listings-api/internal/images"
)

// ImageHandler handles listing image uploads
type ImageHandler struct {
	service *images.Service
}

// NewImageHandler creates a new image handler
func NewImageHandler(service *images.Service) *ImageHandler {
	return &ImageHandler{service: service}
}

// Upload stores one multipart image for a listing
func (h *ImageHandler) Upload(c *gin.Context) {
	propertyID, ok := idParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	displayOrder := 0
	if orderStr := c.PostForm("display_order"); orderStr != "" {
		if order, err := strconv.Atoi(orderStr); err == nil {
			displayOrder = order
		}
	}

	user := auth.CurrentUser(c)
	img, err := h.service.Upload(propertyID, file, displayOrder, user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, img)
}

// List returns a listing's images ordered for display
func (h *ImageHandler) List(c *gin.Context) {
	propertyID, ok := idParam(c, "id")
	if !ok {
		return
	}

	imgs, err := h.service.List(propertyID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": imgs, "count": len(imgs)})
}

// Delete removes one image from a listing
func (h *ImageHandler) Delete(c *gin.Context) {
	propertyID, ok := idParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := idParam(c, "imageId")
	if !ok {
		return
	}

	user := auth.CurrentUser(c)
	if err := h.service.Delete(propertyID, imageID, user); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
