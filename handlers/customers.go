package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenacres/invoicing/repository"
)

type CustomerHandler struct {
	customers *repository.CustomerRepository
}

func NewCustomerHandler(customers *repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List feeds the customer dropdown on the invoice form.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Error: Failed to Fetch Customers."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
