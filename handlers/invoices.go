package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/greenacres/invoicing/invoices"
	"github.com/greenacres/invoicing/repository"
	"github.com/greenacres/invoicing/validation"
)

type InvoiceHandler struct {
	service *invoices.Service
}

func NewInvoiceHandler(service *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// invoiceFormFields are the only fields the dashboard form submits.
var invoiceFormFields = []string{"customerId", "amount", "status"}

// formValues extracts the raw form submission. A field the client did not
// send stays absent from the map rather than becoming an empty string.
func formValues(c *gin.Context) validation.Form {
	form := validation.Form{}
	for _, field := range invoiceFormFields {
		if value, ok := c.GetPostForm(field); ok {
			form[field] = value
		}
	}
	return form
}

// respond maps a pipeline outcome onto the wire: the redirect happens here
// and only here, after every fault-handling boundary has already run.
func respond(c *gin.Context, out invoices.Outcome) {
	switch out.Status {
	case invoices.Succeeded:
		c.Redirect(http.StatusSeeOther, out.RedirectTo)
	case invoices.ValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":  out.FieldErrors,
			"message": out.Message,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": out.Message})
	}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	respond(c, h.service.Create(formValues(c)))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
		return
	}
	respond(c, h.service.Update(id, formValues(c)))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
		return
	}
	respond(c, h.service.Delete(id))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
		return
	}

	invoice, err := h.service.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Error: Failed to Fetch Invoice."})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.service.List(query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database Error: Failed to Fetch Invoices."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices": result,
		"page":     page,
	})
}
