package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"property-listings-api/internal/auth"
	"property-listings-api/internal/models"
	"property-listings-api/internal/property"
	"property-listings-api/internal/search"
)

// PropertyHandler handles listing CRUD and search requests
type PropertyHandler struct {
	service *property.Service
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(service *property.Service) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List returns one page of listings matching the query-string filter
func (h *PropertyHandler) List(c *gin.Context) {
	filter := filterFromQuery(c)
	req := pageRequestFromQuery(c)

	resp, err := h.service.List(filter, req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get returns a single listing by id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Create stores a new listing owned by the caller
func (h *PropertyHandler) Create(c *gin.Context) {
	var req property.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	resp, err := h.service.Create(req, user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Update applies a partial update after the owner-or-admin check
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req property.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	resp, err := h.service.Update(id, req, user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete removes a listing after the owner-or-admin check
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user := auth.CurrentUser(c)
	if err := h.service.Delete(id, user); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Search runs a free-text query over active listings
func (h *PropertyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	resp, err := h.service.SearchText(query, intPtrQuery(c, "page"), intPtrQuery(c, "size"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ByCity returns active listings in one city, newest first
func (h *PropertyHandler) ByCity(c *gin.Context) {
	resp, err := h.service.ListByCity(c.Param("city"), intPtrQuery(c, "page"), intPtrQuery(c, "size"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ByUser returns a user's listings
func (h *PropertyHandler) ByUser(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	resp, err := h.service.ListByOwner(userID, intPtrQuery(c, "page"), intPtrQuery(c, "size"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Mine returns the caller's own listings, inactive included
func (h *PropertyHandler) Mine(c *gin.Context) {
	user := auth.CurrentUser(c)

	resp, err := h.service.ListByOwner(user.ID, intPtrQuery(c, "page"), intPtrQuery(c, "size"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// filterFromQuery builds the listing filter from query parameters. Malformed
// numeric values are treated as absent, never as errors.
func filterFromQuery(c *gin.Context) search.Filter {
	filter := search.NewFilter()

	filter.City = c.Query("city")
	filter.Street = c.Query("street")
	filter.PostalCode = c.Query("postal_code")
	filter.Search = c.Query("search")

	if t := models.TransactionType(c.Query("type")); t.Valid() {
		filter.TransactionType = t
	}

	filter.MinPrice = floatPtrQuery(c, "min_price")
	filter.MaxPrice = floatPtrQuery(c, "max_price")
	filter.MinArea = floatPtrQuery(c, "min_area")
	filter.MaxArea = floatPtrQuery(c, "max_area")
	filter.MinRooms = intPtrQuery(c, "min_rooms")
	filter.MaxRooms = intPtrQuery(c, "max_rooms")
	filter.MinBathrooms = intPtrQuery(c, "min_bathrooms")
	filter.MaxBathrooms = intPtrQuery(c, "max_bathrooms")
	filter.MinFloor = intPtrQuery(c, "min_floor")
	filter.MaxFloor = intPtrQuery(c, "max_floor")

	if activeStr := c.Query("active_only"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			filter.ActiveOnly = active
		}
	}

	return filter
}

func pageRequestFromQuery(c *gin.Context) search.PageRequest {
	return search.NewPageRequest(
		intPtrQuery(c, "page"),
		intPtrQuery(c, "size"),
		c.Query("sort_by"),
		c.Query("sort_direction"),
	)
}

func intPtrQuery(c *gin.Context, name string) *int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return &v
		}
	}
	return nil
}

func floatPtrQuery(c *gin.Context, name string) *float64 {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return &v
		}
	}
	return nil
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
