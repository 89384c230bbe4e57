package property

import (
	"errors"
	"log"

	"property-listings-api/internal/database"
	"property-listings-api/internal/models"
	"property-listings-api/internal/search"
)

var (
	// ErrNotFound is returned when the requested listing does not exist.
	ErrNotFound = database.ErrNotFound
	// ErrForbidden is returned when the caller may not modify the listing.
	ErrForbidden = errors.New("not allowed to modify this listing")
)

// Store is the storage boundary the service runs against. *database.GormDB
// implements it; tests supply an in-memory version evaluating the same
// filter predicates.
type Store interface {
	CreateProperty(p *models.Property) error
	GetPropertyByID(id uint) (*models.Property, error)
	SaveProperty(p *models.Property) error
	DeleteProperty(id uint) error
	ListProperties(filter search.Filter, req search.PageRequest) ([]models.Property, int64, error)
}

// Indexer mirrors listing mutations into the full-text search index.
type Indexer interface {
	IndexProperty(p *models.Property) error
	RemoveProperty(id uint) error
	Search(query string, limit int64) ([]models.Property, error)
}

// Service implements the listing operations.
type Service struct {
	store   Store
	indexer Indexer // nil when search is disabled
}

// NewService creates a listing service. indexer may be nil.
func NewService(store Store, indexer Indexer) *Service {
	return &Service{store: store, indexer: indexer}
}

// CreateRequest is the payload for creating a listing.
type CreateRequest struct {
	Title           string                 `json:"title" binding:"required,min=5,max=200"`
	Description     string                 `json:"description" binding:"omitempty,max=3000"`
	Price           float64                `json:"price" binding:"required,gte=0"`
	AreaSqm         *float64               `json:"area_sqm" binding:"omitempty,gte=0"`
	RoomCount       *int                   `json:"room_count" binding:"omitempty,gte=0"`
	BathroomCount   *int                   `json:"bathroom_count" binding:"omitempty,gte=0"`
	FloorNumber     *int                   `json:"floor_number"`
	City            string                 `json:"city" binding:"required,max=100"`
	Street          string                 `json:"street" binding:"omitempty,max=200"`
	PostalCode      string                 `json:"postal_code" binding:"omitempty,max=20"`
	TransactionType models.TransactionType `json:"transaction_type" binding:"omitempty,oneof=SALE RENT"`
}

// UpdateRequest carries a partial update; nil fields keep their stored value.
type UpdateRequest struct {
	Title           *string                 `json:"title" binding:"omitempty,min=5,max=200"`
	Description     *string                 `json:"description" binding:"omitempty,max=3000"`
	Price           *float64                `json:"price" binding:"omitempty,gte=0"`
	AreaSqm         *float64                `json:"area_sqm" binding:"omitempty,gte=0"`
	RoomCount       *int                    `json:"room_count" binding:"omitempty,gte=0"`
	BathroomCount   *int                    `json:"bathroom_count" binding:"omitempty,gte=0"`
	FloorNumber     *int                    `json:"floor_number"`
	City            *string                 `json:"city" binding:"omitempty,max=100"`
	Street          *string                 `json:"street" binding:"omitempty,max=200"`
	PostalCode      *string                 `json:"postal_code" binding:"omitempty,max=20"`
	TransactionType *models.TransactionType `json:"transaction_type" binding:"omitempty,oneof=SALE RENT"`
	IsActive        *bool                   `json:"is_active"`
}

// CanModify reports whether the user may mutate the listing: the owner and
// admins only. Every mutating operation goes through this single check.
func CanModify(user *models.User, p *models.Property) bool {
	if user == nil {
		return false
	}
	return p.OwnerID == user.ID || user.IsAdmin()
}

// Create stores a new listing owned by the calling user.
func (s *Service) Create(req CreateRequest, owner *models.User) (*Response, error) {
	p := &models.Property{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		AreaSqm:         req.AreaSqm,
		RoomCount:       req.RoomCount,
		BathroomCount:   req.BathroomCount,
		FloorNumber:     req.FloorNumber,
		City:            req.City,
		Street:          req.Street,
		PostalCode:      req.PostalCode,
		TransactionType: req.TransactionType,
		IsActive:        true,
		OwnerID:         owner.ID,
		Owner:           owner,
	}

	if err := s.store.CreateProperty(p); err != nil {
		return nil, err
	}
	log.Printf("Property created: id=%d owner=%s", p.ID, owner.Email)

	s.syncIndex(p)
	return ToResponse(p), nil
}

// Get returns a single listing by id.
func (s *Service) Get(id uint) (*Response, error) {
	p, err := s.store.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(p), nil
}

// Update applies a partial update after the owner-or-admin check.
func (s *Service) Update(id uint, req UpdateRequest, user *models.User) (*Response, error) {
	p, err := s.store.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	if !CanModify(user, p) {
		log.Printf("Update denied: property=%d user=%d", id, user.ID)
		return nil, ErrForbidden
	}

	applyUpdate(p, req)

	if err := s.store.SaveProperty(p); err != nil {
		return nil, err
	}
	log.Printf("Property updated: id=%d by user=%d", p.ID, user.ID)

	s.syncIndex(p)
	return ToResponse(p), nil
}

// Delete removes a listing after the owner-or-admin check. A second delete of
// the same id reports ErrNotFound.
func (s *Service) Delete(id uint, user *models.User) error {
	p, err := s.store.GetPropertyByID(id)
	if err != nil {
		return err
	}

	if !CanModify(user, p) {
		log.Printf("Delete denied: property=%d user=%d", id, user.ID)
		return ErrForbidden
	}

	if err := s.store.DeleteProperty(id); err != nil {
		return err
	}
	log.Printf("Property deleted: id=%d by user=%d", id, user.ID)

	if s.indexer != nil {
		if err := s.indexer.RemoveProperty(id); err != nil {
			log.Printf("Warning: failed to remove property %d from search index: %v", id, err)
		}
	}
	return nil
}

// List runs the composed filter and returns one page of listings.
func (s *Service) List(filter search.Filter, req search.PageRequest) (*PagedResponse, error) {
	properties, total, err := s.store.ListProperties(filter, req)
	if err != nil {
		return nil, err
	}
	return NewPagedResponse(properties, total, req), nil
}

// ListByCity returns active listings for one city, newest first.
func (s *Service) ListByCity(city string, page, size *int) (*PagedResponse, error) {
	filter := search.NewFilter()
	filter.City = city
	return s.List(filter, search.NewPageRequest(page, size, "", ""))
}

// ListByOwner returns a user's listings, newest first, inactive included so
// owners can see their hidden listings.
func (s *Service) ListByOwner(ownerID uint, page, size *int) (*PagedResponse, error) {
	filter := search.Filter{OwnerID: &ownerID}
	return s.List(filter, search.NewPageRequest(page, size, "", ""))
}

// SearchText runs a free-text query: through the search index when available,
// otherwise through the SQL substring fallback. Results always come back as a
// page shape.
func (s *Service) SearchText(query string, page, size *int) (*PagedResponse, error) {
	req := search.NewPageRequest(page, size, "", "")

	if s.indexer != nil {
		hits, err := s.indexer.Search(query, int64(req.Size))
		if err == nil {
			return NewPagedResponse(hits, int64(len(hits)), req), nil
		}
		log.Printf("Warning: search index query failed, falling back to SQL: %v", err)
	}

	filter := search.NewFilter()
	filter.Search = query
	return s.List(filter, req)
}

func (s *Service) syncIndex(p *models.Property) {
	if s.indexer == nil {
		return
	}
	if !p.IsActive {
		if err := s.indexer.RemoveProperty(p.ID); err != nil {
			log.Printf("Warning: failed to remove property %d from search index: %v", p.ID, err)
		}
		return
	}
	if err := s.indexer.IndexProperty(p); err != nil {
		log.Printf("Warning: failed to index property %d: %v", p.ID, err)
	}
}

func applyUpdate(p *models.Property, req UpdateRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.AreaSqm != nil {
		p.AreaSqm = req.AreaSqm
	}
	if req.RoomCount != nil {
		p.RoomCount = req.RoomCount
	}
	if req.BathroomCount != nil {
		p.BathroomCount = req.BathroomCount
	}
	if req.FloorNumber != nil {
		p.FloorNumber = req.FloorNumber
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Street != nil {
		p.Street = *req.Street
	}
	if req.PostalCode != nil {
		p.PostalCode = *req.PostalCode
	}
	if req.TransactionType != nil {
		p.TransactionType = *req.TransactionType
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}
