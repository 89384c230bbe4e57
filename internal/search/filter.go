package search

import (
	"strings"

	"gorm.io/gorm"

	"property-listings-api/internal/models"
)

// Filter holds the optional listing search criteria. Nil pointers and empty
// strings mean "not set"; every supplied criterion must hold for a listing to
// match (logical AND). The free-text Search term is the one exception
// internally: it matches title OR description OR city.
type Filter struct {
	City            string
	TransactionType models.TransactionType
	MinPrice        *float64
	MaxPrice        *float64
	MinArea         *float64
	MaxArea         *float64
	MinRooms        *int
	MaxRooms        *int
	MinBathrooms    *int
	MaxBathrooms    *int
	MinFloor        *int
	MaxFloor        *int
	Street          string
	PostalCode      string
	Search          string
	ActiveOnly      bool

	// OwnerID scopes the query to one owner's listings. It is set internally
	// (my-listings, listings-by-user), never from public search parameters.
	OwnerID *uint
}

// NewFilter returns a filter with the defaults applied (active listings only).
func NewFilter() Filter {
	return Filter{ActiveOnly: true}
}

// Predicate evaluates one criterion against a listing.
type Predicate func(p *models.Property) bool

// Predicates expands the filter into its list of predicate closures. An empty
// filter yields an empty list, which matches everything.
func (f Filter) Predicates() []Predicate {
	var preds []Predicate

	if f.ActiveOnly {
		preds = append(preds, func(p *models.Property) bool { return p.IsActive })
	}
	if f.City != "" {
		city := strings.ToLower(f.City)
		preds = append(preds, func(p *models.Property) bool {
			return strings.ToLower(p.City) == city
		})
	}
	if f.TransactionType != "" {
		preds = append(preds, func(p *models.Property) bool {
			return p.TransactionType == f.TransactionType
		})
	}
	if f.MinPrice != nil {
		preds = append(preds, func(p *models.Property) bool { return p.Price >= *f.MinPrice })
	}
	if f.MaxPrice != nil {
		preds = append(preds, func(p *models.Property) bool { return p.Price <= *f.MaxPrice })
	}
	if f.MinArea != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.AreaSqm != nil && *p.AreaSqm >= *f.MinArea
		})
	}
	if f.MaxArea != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.AreaSqm != nil && *p.AreaSqm <= *f.MaxArea
		})
	}
	if f.MinRooms != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.RoomCount != nil && *p.RoomCount >= *f.MinRooms
		})
	}
	if f.MaxRooms != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.RoomCount != nil && *p.RoomCount <= *f.MaxRooms
		})
	}
	if f.MinBathrooms != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.BathroomCount != nil && *p.BathroomCount >= *f.MinBathrooms
		})
	}
	if f.MaxBathrooms != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.BathroomCount != nil && *p.BathroomCount <= *f.MaxBathrooms
		})
	}
	if f.MinFloor != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.FloorNumber != nil && *p.FloorNumber >= *f.MinFloor
		})
	}
	if f.MaxFloor != nil {
		preds = append(preds, func(p *models.Property) bool {
			return p.FloorNumber != nil && *p.FloorNumber <= *f.MaxFloor
		})
	}
	if f.Street != "" {
		street := strings.ToLower(f.Street)
		preds = append(preds, func(p *models.Property) bool {
			return strings.Contains(strings.ToLower(p.Street), street)
		})
	}
	if f.PostalCode != "" {
		preds = append(preds, func(p *models.Property) bool {
			return p.PostalCode == f.PostalCode
		})
	}
	if f.OwnerID != nil {
		preds = append(preds, func(p *models.Property) bool { return p.OwnerID == *f.OwnerID })
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		preds = append(preds, func(p *models.Property) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				strings.Contains(strings.ToLower(p.City), term)
		})
	}

	return preds
}

// Matches evaluates the composed predicate against a single listing in memory.
func (f Filter) Matches(p *models.Property) bool {
	for _, pred := range f.Predicates() {
		if !pred(p) {
			return false
		}
	}
	return true
}

// Scope translates the filter into a GORM scope applying the same constraints
// as Predicates, so the database evaluates the identical conjunction.
func (f Filter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ActiveOnly {
			db = db.Where("is_active = ?", true)
		}
		if f.City != "" {
			db = db.Where("LOWER(city) = ?", strings.ToLower(f.City))
		}
		if f.TransactionType != "" {
			db = db.Where("transaction_type = ?", f.TransactionType)
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		if f.MinArea != nil {
			db = db.Where("area_sqm >= ?", *f.MinArea)
		}
		if f.MaxArea != nil {
			db = db.Where("area_sqm <= ?", *f.MaxArea)
		}
		if f.MinRooms != nil {
			db = db.Where("room_count >= ?", *f.MinRooms)
		}
		if f.MaxRooms != nil {
			db = db.Where("room_count <= ?", *f.MaxRooms)
		}
		if f.MinBathrooms != nil {
			db = db.Where("bathroom_count >= ?", *f.MinBathrooms)
		}
		if f.MaxBathrooms != nil {
			db = db.Where("bathroom_count <= ?", *f.MaxBathrooms)
		}
		if f.MinFloor != nil {
			db = db.Where("floor_number >= ?", *f.MinFloor)
		}
		if f.MaxFloor != nil {
			db = db.Where("floor_number <= ?", *f.MaxFloor)
		}
		if f.Street != "" {
			db = db.Where("LOWER(street) LIKE ?", "%"+strings.ToLower(f.Street)+"%")
		}
		if f.PostalCode != "" {
			db = db.Where("postal_code = ?", f.PostalCode)
		}
		if f.OwnerID != nil {
			db = db.Where("owner_id = ?", *f.OwnerID)
		}
		if f.Search != "" {
			term := "%" + strings.ToLower(f.Search) + "%"
			db = db.Where(
				"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(city) LIKE ?",
				term, term, term,
			)
		}
		return db
	}
}
