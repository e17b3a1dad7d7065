package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrNilPayment           = errors.New("payment is nil")
	ErrInvalidPublicPayment = errors.New("payment does not match public schema")
)
