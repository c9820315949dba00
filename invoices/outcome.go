package invoices

import (
	"github.com/greenacres/invoicing/validation"
)

// Status tags the result of a mutation.
type Status int

const (
	Succeeded Status = iota
	ValidationFailed
	StoreFailed
)

// Outcome is the tagged result of the intake → validate → persist pipeline.
// Exactly one variant is populated. Navigation is data here, not control
// flow: only a Succeeded outcome carries a redirect target, and only the
// transport layer acts on it, so no error-handling boundary around the
// store call can ever swallow a successful mutation.
type Outcome struct {
	Status      Status
	RedirectTo  string
	FieldErrors validation.FieldErrors
	Message     string
}

func succeeded() Outcome {
	return Outcome{Status: Succeeded, RedirectTo: ListPath}
}

func invalid(res validation.Result) Outcome {
	return Outcome{Status: ValidationFailed, FieldErrors: res.Errors, Message: res.Message}
}

func storeFailed(message string) Outcome {
	return Outcome{Status: StoreFailed, Message: message}
}
