package models

import (
	"time"
)

// Order represents a customer repair request in the system
type Order struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail *string    `json:"customer_email"`
	ServiceID     *uint      `gorm:"index" json:"service_id,omitempty"` // weak reference to services, display only
	PhoneModel    string     `json:"phone_model"`
	IMEI          *string    `gorm:"column:imei" json:"imei"`
	Message       *string    `json:"message"`
	Status        string     `gorm:"not null;default:'new'" json:"status"` // new, then operator-assigned: in_progress, done, cancelled, ...
	CreatedAt     *time.Time `json:"created_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderWithService is the read row for order listings, carrying the
// title of the linked service when one is set.
type OrderWithService struct {
	ID            uint       `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail *string    `json:"customer_email"`
	PhoneModel    string     `json:"phone_model"`
	IMEI          *string    `json:"imei"`
	Message       *string    `json:"message"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at"`
	ServiceTitle  *string    `json:"service_title"`
}
