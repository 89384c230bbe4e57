package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-listings-api/internal/contact"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	service *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service *contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create stores a contact form message
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	saved, err := h.service.Save(req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}
