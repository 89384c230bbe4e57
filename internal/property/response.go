package property

import (
	"sort"
	"strings"
	"time"

	"property-listings-api/internal/models"
	"property-listings-api/internal/search"
)

// OwnerSummary is the public slice of the owner's account shown on a listing.
type OwnerSummary struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Response is the external shape of a listing.
type Response struct {
	ID              uint                   `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	Price           float64                `json:"price"`
	TransactionType models.TransactionType `json:"transaction_type,omitempty"`
	Address         *string                `json:"address"`
	AreaSqm         *float64               `json:"area_sqm,omitempty"`
	Rooms           *int                   `json:"rooms,omitempty"`
	Bathrooms       *int                   `json:"bathrooms,omitempty"`
	Floor           *int                   `json:"floor,omitempty"`
	IsActive        bool                   `json:"is_active"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Owner           *OwnerSummary          `json:"owner,omitempty"`
	ImageURLs       []string               `json:"image_urls"`
}

// PagedResponse is one page of listings plus page metadata.
type PagedResponse struct {
	Content       []Response `json:"content"`
	PageNumber    int        `json:"page_number"`
	PageSize      int        `json:"page_size"`
	TotalElements int64      `json:"total_elements"`
	TotalPages    int        `json:"total_pages"`
	First         bool       `json:"first"`
	Last          bool       `json:"last"`
}

// ToResponse maps a stored listing into its external shape.
func ToResponse(p *models.Property) *Response {
	resp := &Response{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		TransactionType: p.TransactionType,
		Address:         BuildAddress(p),
		AreaSqm:         p.AreaSqm,
		Rooms:           p.RoomCount,
		Bathrooms:       p.BathroomCount,
		Floor:           p.FloorNumber,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		ImageURLs:       imageURLs(p.Images),
	}

	if p.Owner != nil {
		resp.Owner = &OwnerSummary{
			ID:          p.Owner.ID,
			FirstName:   p.Owner.FirstName,
			LastName:    p.Owner.LastName,
			Email:       p.Owner.Email,
			PhoneNumber: p.Owner.PhoneNumber,
		}
	}

	return resp
}

// BuildAddress joins street, city and postal code with commas, skipping absent
// parts. Nil when both street and city are missing.
func BuildAddress(p *models.Property) *string {
	if p.Street == "" && p.City == "" {
		return nil
	}

	var parts []string
	if p.Street != "" {
		parts = append(parts, p.Street)
	}
	if p.City != "" {
		parts = append(parts, p.City)
	}
	if p.PostalCode != "" {
		parts = append(parts, p.PostalCode)
	}

	address := strings.Join(parts, ", ")
	return &address
}

// NewPagedResponse assembles one page of results with its metadata.
func NewPagedResponse(properties []models.Property, total int64, req search.PageRequest) *PagedResponse {
	content := make([]Response, 0, len(properties))
	for i := range properties {
		content = append(content, *ToResponse(&properties[i]))
	}

	totalPages := search.TotalPages(total, req.Size)
	return &PagedResponse{
		Content:       content,
		PageNumber:    req.Page,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         req.Page == 0,
		Last:          req.Page >= totalPages-1,
	}
}

func imageURLs(images []models.PropertyImage) []string {
	if len(images) == 0 {
		return []string{}
	}

	sorted := make([]models.PropertyImage, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	urls := make([]string, 0, len(sorted))
	for _, img := range sorted {
		urls = append(urls, img.FileUrl)
	}
	return urls
}
