// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// payments API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" member of JSON error bodies. Keeping them in one place keeps
// the wording consistent between the server and the client that matches on
// it.
package app

const (
	// MsgUnauthorized is returned when the payment exists but its booking
	// belongs to another user.
	MsgUnauthorized = "Unauthorized"

	// MsgNoAPIKey is returned when the request carries no API key.
	MsgNoAPIKey = "No apiKey provided"

	// MsgInvalidAPIKey is returned when the API key matches no stored key.
	MsgInvalidAPIKey = "Your apiKey is not valid"

	// MsgExpiredAPIKey is returned when the API key's expiry has passed.
	MsgExpiredAPIKey = "Your apiKey is expired"

	// MsgInvalidQueryID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidQueryID = "Invalid id"

	// MsgPaymentNotFoundFormat is formatted with the requested payment id.
	MsgPaymentNotFoundFormat = "Payment with id: %d not found"

	// MsgMethodNotAllowed is returned for any method other than GET on a
	// known route.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"
)

// Names used in the "error" member of JSON error bodies.
const (
	ErrNameNotFound   = "NotFoundError"
	ErrNameValidation = "ValidationError"
)
