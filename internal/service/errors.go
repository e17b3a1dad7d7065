package service

import "errors"

var (
	// ErrPaymentNotFound covers every failure to produce a payment for the
	// caller: a missing record, a store failure or a record that does not
	// match the public schema.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentLookupFailed and ErrPaymentSchemaMismatch are wrapped
	// together with ErrPaymentNotFound to name the class of failure.
	ErrPaymentLookupFailed   = errors.New("payment could not be loaded")
	ErrPaymentSchemaMismatch = errors.New("payment does not match the public schema")

	// ErrUnauthorizedPaymentAccess is returned when the payment exists but
	// its booking is not owned by the caller.
	ErrUnauthorizedPaymentAccess = errors.New("payment belongs to another user's booking")

	// ErrInvalidPaymentID is returned for ids that are not positive.
	ErrInvalidPaymentID = errors.New("invalid payment id")

	ErrEmptyAPIKey   = errors.New("no apiKey provided")
	ErrInvalidAPIKey = errors.New("your apiKey is not valid")
	ErrAPIKeyExpired = errors.New("your apiKey is expired")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
