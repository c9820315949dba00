package models

import (
	"github.com/google/uuid"
)

// Customer is read-only lookup data for the invoice form; nothing in this
// service mutates it.
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null" json:"email"`
	ImageURL string    `gorm:"size:500" json:"image_url"`
}

// TableName overrides the table name
func (Customer) TableName() string {
	return "customers"
}
