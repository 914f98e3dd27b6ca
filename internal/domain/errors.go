package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrOrderRequired   = errors.New("order payload is required")
	ErrInvalidPayload  = errors.New("order payload is not a JSON object")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidProfile  = errors.New("invalid company tax profile")
	ErrAllocateInvoice = errors.New("invoice identity could not be allocated")
)
