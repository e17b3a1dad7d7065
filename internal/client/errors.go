package client

import "errors"

var (
	ErrNoPaymentIDs     = errors.New("no payment ids given")
	ErrInvalidPaymentID = errors.New("payment id must be a positive integer")
	ErrFetchFailed      = errors.New("some payments could not be fetched")
)
