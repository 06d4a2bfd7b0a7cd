package warranty

import "errors"

var (
	ErrWarrantyNotFound  = errors.New("warranty not found")
	ErrInvalidTransition = errors.New("warranty status transition not allowed")
)
