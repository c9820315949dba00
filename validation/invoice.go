package validation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenacres/invoicing/models"
)

// Form is the raw user-submitted field values. A key that was absent from
// the submission must be absent from the map as well, not present as "".
type Form map[string]string

// FieldErrors maps a field name to its ordered human-readable messages.
type FieldErrors map[string][]string

// InvoiceFields is a validated, typed invoice record ready for the store.
type InvoiceFields struct {
	CustomerID  string
	AmountCents int64
	Status      string
	Date        string // YYYY-MM-DD; populated on the create projection only
}

// Result is either a typed record or per-field messages, never both.
type Result struct {
	Record  *InvoiceFields
	Errors  FieldErrors
	Message string
}

func (r Result) Valid() bool {
	return r.Record != nil
}

// Projection selects which derived fields the canonical schema fills in.
// Create stamps the date; update leaves the stored date untouched.
type Projection struct {
	StampDate   bool
	FailMessage string
}

var (
	CreateFields = Projection{StampDate: true, FailMessage: "Missing Fields. Failed to Create Invoice."}
	UpdateFields = Projection{StampDate: false, FailMessage: "Missing Fields. Failed to Update Invoice."}
)

var hundred = decimal.NewFromInt(100)

// ValidateInvoice checks raw form input against the invoice schema. All
// field errors are collected in a single pass so the form can render every
// problem at once.
func ValidateInvoice(form Form, p Projection) Result {
	errs := FieldErrors{}

	customerID := form["customerId"]
	if customerID == "" {
		errs["customerId"] = append(errs["customerId"], "Please select a customer.")
	}

	var amountCents int64
	raw, ok := form["amount"]
	amount, err := decimal.NewFromString(raw)
	switch {
	case !ok || err != nil:
		errs["amount"] = append(errs["amount"], "Please enter an amount greater than $0.")
	case amount.LessThanOrEqual(decimal.Zero):
		errs["amount"] = append(errs["amount"], "Please enter an amount greater than $0.")
	case !amount.Mul(hundred).IsInteger():
		errs["amount"] = append(errs["amount"], "Please enter an amount in whole cents.")
	default:
		amountCents = amount.Mul(hundred).IntPart()
	}

	status := form["status"]
	if status != models.StatusPending && status != models.StatusPaid {
		errs["status"] = append(errs["status"], "Please select an invoice status.")
	}

	if len(errs) > 0 {
		return Result{Errors: errs, Message: p.FailMessage}
	}

	record := &InvoiceFields{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
	}
	if p.StampDate {
		record.Date = time.Now().UTC().Format("2006-01-02")
	}
	return Result{Record: record}
}
