// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the payments API.
//
// The primary abstraction is [PaymentsAPI], which decouples callers such as
// the command-line client from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPPaymentsAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-booking-payments/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PaymentsAPI defines transport-agnostic access to the payments API.
// Implementations attach the caller's API key to every request.
type PaymentsAPI interface {
	// GetPayment fetches payment id. Returns [ErrUnauthorized] (wrapped) if
	// the payment belongs to another user or the key is rejected, and
	// [ErrNotFound] (wrapped) if the payment does not exist.
	GetPayment(ctx context.Context, id int64) (models.PaymentPublic, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
