package invoices

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/greenacres/invoicing/models"
	"github.com/greenacres/invoicing/validation"
)

// ListPath is the canonical invoices list destination a successful
// mutation navigates back to.
const ListPath = "/dashboard/invoices"

// Gateway is the persistence boundary the pipeline writes through.
// *repository.InvoiceRepository satisfies it.
type Gateway interface {
	Create(rec validation.InvoiceFields) error
	Update(id uuid.UUID, rec validation.InvoiceFields) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	Search(query string, page int) ([]models.Invoice, error)
}

// Service runs the mutation pipeline: validate, persist, then invalidate
// the list cache. Each step happens at most once per call.
type Service struct {
	gateway Gateway
	cache   ListCache
}

func NewService(gateway Gateway, cache ListCache) *Service {
	return &Service{gateway: gateway, cache: cache}
}

// Create validates raw form input and inserts a new invoice. The creation
// date is stamped during validation.
func (s *Service) Create(form validation.Form) Outcome {
	res := validation.ValidateInvoice(form, validation.CreateFields)
	if !res.Valid() {
		return invalid(res)
	}
	if err := s.gateway.Create(*res.Record); err != nil {
		return storeFailed("Database Error: Failed to Create Invoice.")
	}
	s.cache.Invalidate()
	return succeeded()
}

// Update validates raw form input and overwrites the invoice's mutable
// fields. The stored date is never altered.
func (s *Service) Update(id uuid.UUID, form validation.Form) Outcome {
	res := validation.ValidateInvoice(form, validation.UpdateFields)
	if !res.Valid() {
		return invalid(res)
	}
	if err := s.gateway.Update(id, *res.Record); err != nil {
		return storeFailed("Database Error: Failed to Update Invoice.")
	}
	s.cache.Invalidate()
	return succeeded()
}

// Delete removes an invoice. A second delete of the same id succeeds the
// same way the first did.
func (s *Service) Delete(id uuid.UUID) Outcome {
	if err := s.gateway.Delete(id); err != nil {
		return storeFailed("Database Error: Failed to Delete Invoice.")
	}
	s.cache.Invalidate()
	return succeeded()
}

// Get fetches one invoice for the edit form.
func (s *Service) Get(id uuid.UUID) (*models.Invoice, error) {
	return s.gateway.GetByID(id)
}

// List returns one page of invoices, served from the cache when the list
// has not been mutated since it was last read.
func (s *Service) List(query string, page int) ([]models.Invoice, error) {
	if page < 1 {
		page = 1
	}
	key := fmt.Sprintf("q=%s&page=%d", query, page)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	invoices, err := s.gateway.Search(query, page)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, invoices)
	return invoices, nil
}
