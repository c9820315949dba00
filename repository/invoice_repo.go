package repository

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenacres/invoicing/models"
	"github.com/greenacres/invoicing/validation"
)

// Store fault taxonomy. Raw driver errors never cross this boundary.
var (
	ErrNotFound = errors.New("record not found")
	ErrDatabase = errors.New("database error")
)

// PageSize is the number of invoices per list page.
const PageSize = 6

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts a new invoice row. The store assigns the identifier.
func (r *InvoiceRepository) Create(rec validation.InvoiceFields) error {
	customerID, err := uuid.Parse(rec.CustomerID)
	if err != nil {
		log.Printf("invoice insert rejected, bad customer reference %q: %v", rec.CustomerID, err)
		return ErrDatabase
	}

	invoice := models.Invoice{
		CustomerID: customerID,
		Amount:     rec.AmountCents,
		Status:     rec.Status,
		Date:       rec.Date,
	}
	if err := r.db.Create(&invoice).Error; err != nil {
		log.Printf("invoice insert failed: %v", err)
		return ErrDatabase
	}
	return nil
}

// Update overwrites the mutable columns of an invoice. The id and date
// columns are immutable and never touched. Updating an id that no longer
// exists affects zero rows and is not an error.
func (r *InvoiceRepository) Update(id uuid.UUID, rec validation.InvoiceFields) error {
	customerID, err := uuid.Parse(rec.CustomerID)
	if err != nil {
		log.Printf("invoice update rejected, bad customer reference %q: %v", rec.CustomerID, err)
		return ErrDatabase
	}

	res := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"customer_id": customerID,
		"amount":      rec.AmountCents,
		"status":      rec.Status,
	})
	if res.Error != nil {
		log.Printf("invoice update failed for %s: %v", id, res.Error)
		return ErrDatabase
	}
	return nil
}

// Delete removes an invoice by id. Deleting an id that does not exist is
// tolerated silently, so the operation is idempotent.
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Invoice{}, "id = ?", id).Error; err != nil {
		log.Printf("invoice delete failed for %s: %v", id, err)
		return ErrDatabase
	}
	return nil
}

// GetByID fetches a single invoice with its customer.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Preload("Customer").First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("invoice fetch failed for %s: %v", id, err)
		return nil, ErrDatabase
	}
	return &invoice, nil
}

// Search returns one page of invoices, newest first, optionally filtered by
// a free-text term matched against customer name/email, amount and status.
func (r *InvoiceRepository) Search(query string, page int) ([]models.Invoice, error) {
	if page < 1 {
		page = 1
	}

	dbQuery := r.db.Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Preload("Customer")

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.Where(
			"LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR LOWER(invoices.status) LIKE ? OR CAST(invoices.amount AS TEXT) LIKE ?",
			like, like, like, like,
		)
	}

	var invoices []models.Invoice
	err := dbQuery.
		Order("invoices.date DESC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&invoices).Error
	if err != nil {
		log.Printf("invoice search failed: %v", err)
		return nil, ErrDatabase
	}
	return invoices, nil
}
