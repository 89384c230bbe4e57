package models

import "time"

// TransactionType tells whether a listing is for sale or for rent.
type TransactionType string

const (
	TransactionSale TransactionType = "SALE"
	TransactionRent TransactionType = "RENT"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionRent
}

type Property struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(200);not null" json:"title"`
	Description string  `gorm:"type:varchar(3000)" json:"description,omitempty"`
	Price       float64 `gorm:"type:decimal(10,2);not null;index" json:"price"`

	// Optional attributes used by the filter layer
	AreaSqm         *float64        `gorm:"type:decimal(10,2)" json:"area_sqm,omitempty"`
	RoomCount       *int            `gorm:"type:int" json:"room_count,omitempty"`
	BathroomCount   *int            `gorm:"type:int" json:"bathroom_count,omitempty"`
	FloorNumber     *int            `gorm:"type:int" json:"floor_number,omitempty"`
	City            string          `gorm:"type:varchar(100);index;index:idx_city_price,priority:1;index:idx_city_active,priority:1" json:"city,omitempty"`
	Street          string          `gorm:"type:varchar(200)" json:"street,omitempty"`
	PostalCode      string          `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	TransactionType TransactionType `gorm:"type:varchar(10);index" json:"transaction_type,omitempty"`

	// Soft visibility: inactive listings stay stored but drop out of default queries
	IsActive bool `gorm:"not null;default:true;index;index:idx_city_active,priority:2;index:idx_active_created,priority:1" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_created_at,sort:desc;index:idx_active_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	OwnerID uint  `gorm:"not null;index" json:"owner_id"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"-"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}

// Deactivate soft-hides the listing from default queries.
func (p *Property) Deactivate() {
	p.IsActive = false
}
