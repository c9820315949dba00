package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenacres/invoicing/models"
	"github.com/greenacres/invoicing/repository"
)

func TestListCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := setupTestDB(t)
	require.NoError(t, db.Create(&models.Customer{
		ID:    uuid.New(),
		Name:  "Balazs Orban",
		Email: "balazs@orban.test",
	}).Error)

	handler := NewCustomerHandler(repository.NewCustomerRepository(db))
	router := gin.New()
	router.GET("/customers", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/customers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Ordered by name: Amy before Balazs.
	body := w.Body.String()
	assert.Contains(t, body, "Amy Burns")
	assert.Contains(t, body, "Balazs Orban")
	assert.Less(t, strings.Index(body, "Amy Burns"), strings.Index(body, "Balazs Orban"))
}
