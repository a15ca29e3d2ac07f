package models

import (
	"time"
)

// Review represents customer feedback, hidden until an operator publishes it
type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerName string     `json:"customer_name"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	PhoneModel   string     `json:"phone_model"`
	IsPublished  bool       `gorm:"not null;default:false" json:"is_published"`
	CreatedAt    *time.Time `json:"created_at"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
