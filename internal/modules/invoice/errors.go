package invoice

import "errors"

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvalidTransition = errors.New("invoice status transition not allowed")
)
