package quote

import "errors"

var (
	// ErrInvalidQuote signals a submission that failed validation.
	ErrInvalidQuote = errors.New("invalid quote data")

	// ErrNoCustomerEmail signals an accept on a quote with no contact address.
	ErrNoCustomerEmail = errors.New("quote has no customer email")
)
