package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/greenacres/invoicing/models"
	"github.com/greenacres/invoicing/validation"
)

func setupTestDB(t *testing.T) (*gorm.DB, models.Customer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Invoice{}))

	customer := models.Customer{
		ID:    uuid.New(),
		Name:  "Amy Burns",
		Email: "amy@burns.test",
	}
	require.NoError(t, db.Create(&customer).Error)
	return db, customer
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestCreateAndGet(t *testing.T) {
	db, customer := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	err := repo.Create(validation.InvoiceFields{
		CustomerID:  customer.ID.String(),
		AmountCents: 4500,
		Status:      models.StatusPending,
		Date:        today(),
	})
	require.NoError(t, err)

	var stored models.Invoice
	require.NoError(t, db.First(&stored).Error)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, customer.ID, stored.CustomerID)
	assert.Equal(t, int64(4500), stored.Amount)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, today(), stored.Date)

	got, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "Amy Burns", got.Customer.Name)
}

func TestCreateRejectsBadCustomerReference(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	err := repo.Create(validation.InvoiceFields{
		CustomerID:  "not-a-uuid",
		AmountCents: 100,
		Status:      models.StatusPaid,
		Date:        today(),
	})
	assert.ErrorIs(t, err, ErrDatabase)

	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateIsFullOverwrite(t *testing.T) {
	db, customer := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	original := models.Invoice{
		CustomerID: customer.ID,
		Amount:     4500,
		Status:     models.StatusPending,
		Date:       "2026-01-15",
	}
	require.NoError(t, db.Create(&original).Error)

	// Resubmit the original customer/amount with a new status.
	err := repo.Update(original.ID, validation.InvoiceFields{
		CustomerID:  customer.ID.String(),
		AmountCents: 4500,
		Status:      models.StatusPaid,
	})
	require.NoError(t, err)

	var stored models.Invoice
	require.NoError(t, db.First(&stored, "id = ?", original.ID).Error)
	assert.Equal(t, models.StatusPaid, stored.Status)
	assert.Equal(t, int64(4500), stored.Amount)
	assert.Equal(t, customer.ID, stored.CustomerID)
	assert.Equal(t, "2026-01-15", stored.Date, "date is immutable")
}

func TestUpdateMissingIDIsTolerated(t *testing.T) {
	db, customer := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	err := repo.Update(uuid.New(), validation.InvoiceFields{
		CustomerID:  customer.ID.String(),
		AmountCents: 100,
		Status:      models.StatusPaid,
	})
	assert.NoError(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db, customer := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	invoice := models.Invoice{
		CustomerID: customer.ID,
		Amount:     1000,
		Status:     models.StatusPaid,
		Date:       today(),
	}
	require.NoError(t, db.Create(&invoice).Error)

	require.NoError(t, repo.Delete(invoice.ID))
	assert.NoError(t, repo.Delete(invoice.ID), "second delete of the same id must not fail")

	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetByIDNotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	_, err := repo.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	db, customer := setupTestDB(t)
	repo := NewInvoiceRepository(db)

	other := models.Customer{ID: uuid.New(), Name: "Lee Robinson", Email: "lee@robinson.test"}
	require.NoError(t, db.Create(&other).Error)

	rows := []models.Invoice{
		{CustomerID: customer.ID, Amount: 4500, Status: models.StatusPending, Date: "2026-08-01"},
		{CustomerID: customer.ID, Amount: 666, Status: models.StatusPaid, Date: "2026-08-02"},
		{CustomerID: other.ID, Amount: 1000, Status: models.StatusPaid, Date: "2026-08-03"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	t.Run("no filter returns newest first", func(t *testing.T) {
		got, err := repo.Search("", 1)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "2026-08-03", got[0].Date)
	})

	t.Run("filter by customer name", func(t *testing.T) {
		got, err := repo.Search("lee", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0].CustomerID)
	})

	t.Run("filter by status", func(t *testing.T) {
		got, err := repo.Search("pending", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(4500), got[0].Amount)
	})

	t.Run("filter by amount", func(t *testing.T) {
		got, err := repo.Search("666", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("pagination", func(t *testing.T) {
		for i := 0; i < PageSize; i++ {
			require.NoError(t, db.Create(&models.Invoice{
				CustomerID: customer.ID,
				Amount:     int64(100 + i),
				Status:     models.StatusPending,
				Date:       "2026-08-10",
			}).Error)
		}
		first, err := repo.Search("", 1)
		require.NoError(t, err)
		assert.Len(t, first, PageSize)

		second, err := repo.Search("", 2)
		require.NoError(t, err)
		assert.Len(t, second, 3)
	})
}
