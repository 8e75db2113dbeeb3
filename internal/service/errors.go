package service

import "errors"

// Service-level errors. Handlers map these to HTTP status codes; the
// user-facing message text lives in internal/constants.
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserDisabled        = errors.New("user is disabled")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrPasswordTooLong     = errors.New("password too long for bcrypt")
	ErrCompanyNameTooShort = errors.New("company name too short")

	ErrItemNotFound        = errors.New("item not found")
	ErrLineNotFound        = errors.New("invoice line not found")
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrUnitPriceRequired   = errors.New("unit price required without item")

	ErrUnknownStatus     = errors.New("unknown invoice status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvoiceLocked     = errors.New("invoice can no longer be edited")
)
