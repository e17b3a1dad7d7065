// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the read-only data access layer for users,
// bookings, payments and API keys over PostgreSQL or SQLite.
package store

import (
	"context"

	"github.com/MKhiriev/go-booking-payments/models"
)

//go:generate mockgen -destination=../mock/store_mock.go -package=mock . UserRepository,PaymentRepository,APIKeyRepository

// UserRepository reads users together with the bookings they own.
type UserRepository interface {
	// FindUserWithBookings returns the user identified by userID and all of
	// their bookings. Returns [ErrNoUserWasFound] if the user does not exist.
	FindUserWithBookings(ctx context.Context, userID int64) (models.UserWithBookings, error)
}

// PaymentRepository reads stored payments.
type PaymentRepository interface {
	// FindPaymentByID returns the stored payment with the given id.
	// Returns [ErrPaymentNotFound] if no such payment exists.
	FindPaymentByID(ctx context.Context, id int64) (models.Payment, error)
}

// APIKeyRepository reads API keys by their hashed value.
type APIKeyRepository interface {
	// FindAPIKeyByHash returns the key whose hashed_key equals hashedKey.
	// Returns [ErrAPIKeyNotFound] if no key matches.
	FindAPIKeyByHash(ctx context.Context, hashedKey string) (models.APIKey, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
