package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses accepted by the dashboard.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Amount     int64     `gorm:"not null" json:"amount"`         // minor units (cents)
	Status     string    `gorm:"size:20;not null" json:"status"` // pending, paid
	Date       string    `gorm:"size:10;not null" json:"date"`   // YYYY-MM-DD, fixed at creation
}

// TableName overrides the table name
func (Invoice) TableName() string {
	return "invoices"
}

// BeforeCreate assigns the identifier at the store boundary.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
