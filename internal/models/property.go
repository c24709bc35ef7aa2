package models

import "time"

type PriceType string

const (
	PriceTotal    PriceType = "total"
	PricePerMonth PriceType = "per-month"
	PricePerYear  PriceType = "per-year"
)

type PropertyType string

const (
	TypeApartment  PropertyType = "apartment"
	TypeHouse      PropertyType = "house"
	TypeVilla      PropertyType = "villa"
	TypeCommercial PropertyType = "commercial"
	TypeLand       PropertyType = "land"
)

type PropertyStatus string

const (
	StatusForSale PropertyStatus = "for-sale"
	StatusForRent PropertyStatus = "for-rent"
	StatusSold    PropertyStatus = "sold"
)

type Property struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"not null;index" json:"price"`
	PriceType   PriceType       `gorm:"not null;default:total" json:"priceType"`
	Type        PropertyType    `gorm:"not null;index" json:"type"`
	Status      PropertyStatus  `gorm:"not null;index" json:"status"`
	Location    string          `gorm:"not null;index" json:"location"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Bedrooms    int             `gorm:"not null;default:0" json:"bedrooms"`
	Bathrooms   int             `gorm:"not null;default:0" json:"bathrooms"`
	Area        float64         `gorm:"not null;default:0" json:"area"`
	Amenities   []string        `gorm:"serializer:json" json:"amenities"`
	Featured    bool            `gorm:"not null;default:false;index" json:"featured"`
	UserID      uint            `gorm:"not null;index" json:"userId"`
	Owner       User            `gorm:"foreignKey:UserID" json:"owner"`
	Images      []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// OwnerID reports the owning user, used by the policy ownership comparator.
func (p *Property) OwnerID() uint {
	return p.UserID
}

// PropertyImage is a dependent collection keyed by property id; rows are
// removed together with their property.
type PropertyImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"propertyId"`
	URL        string    `gorm:"not null" json:"url"`
	SortOrder  int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PaginatedPropertiesResponse struct {
	Success    bool       `json:"success"`
	Data       []Property `json:"data"`
	Pagination Pagination `json:"pagination"`
	Total      int64      `json:"total"`
}
