package repository

import (
	"log"

	"gorm.io/gorm"

	"github.com/greenacres/invoicing/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns all customers ordered by name, for the invoice form dropdown.
func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Order("name ASC").Find(&customers).Error; err != nil {
		log.Printf("customer list failed: %v", err)
		return nil, ErrDatabase
	}
	return customers, nil
}
