// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the transport layer. Callers can match against
// them with [errors.Is].
var (
	// ErrNoAPIKeyProvided is returned when the request carries neither an
	// "apiKey" query parameter nor an "Authorization" header.
	ErrNoAPIKeyProvided = errors.New("no api key in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or has no key part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the key itself is blank.
	ErrEmptyToken = errors.New("empty api key in `Authorization` header")

	// ErrInvalidQueryID is returned when the {id} path parameter is not a
	// base-10 integer.
	ErrInvalidQueryID = errors.New("id must be a positive integer")
)
