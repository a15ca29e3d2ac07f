package models

// Service represents a repair offering in the catalog.
// All columns except id are nullable so a full-field update may write
// absent fields as NULL without tripping constraints.
type Service struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `gorm:"type:numeric(10,2)" json:"price"`
	Icon        *string  `json:"icon"`
	Category    *string  `json:"category"`
	IsActive    *bool    `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// ServiceResponse is the wire shape for catalog listings.
// A missing price reads as 0 so storefront clients always get a number.
type ServiceResponse struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Icon        *string `json:"icon"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"is_active"`
}

// Response converts a Service row into its wire shape
func (s Service) Response() ServiceResponse {
	price := 0.0
	if s.Price != nil {
		price = *s.Price
	}
	return ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       price,
		Icon:        s.Icon,
		Category:    s.Category,
		IsActive:    s.IsActive,
	}
}
