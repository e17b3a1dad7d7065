// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/store"
	"github.com/MKhiriev/go-booking-payments/internal/validators"
	"github.com/MKhiriev/go-booking-payments/models"
)

// paymentService is the concrete implementation of [PaymentService].
// Stores are injected as interfaces so tests can replace them with fakes.
type paymentService struct {
	userRepository    store.UserRepository
	paymentRepository store.PaymentRepository
	validator         validators.Validator

	logger *logger.Logger
}

// NewPaymentService constructs a [PaymentService] over the given repositories.
// The validator checks the public projection of every fetched payment.
func NewPaymentService(userRepository store.UserRepository, paymentRepository store.PaymentRepository, validator validators.Validator, logger *logger.Logger) PaymentService {
	return &paymentService{
		userRepository:    userRepository,
		paymentRepository: paymentRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (p *paymentService) ValidatePaymentID(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPaymentID
	}
	return nil
}

// GetPaymentByID loads the caller's bookings, then the payment, and returns
// the public projection when the payment's booking is among them.
//
// Every failure before the ownership check is reported as
// [ErrPaymentNotFound] wrapping the underlying cause. Store failures also
// wrap [ErrPaymentLookupFailed] and schema violations [ErrPaymentSchemaMismatch]. A caller without a user
// record owns no bookings.
func (p *paymentService) GetPaymentByID(ctx context.Context, userID, id int64) (models.PaymentPublic, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserWithBookings(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Warn().Int64("user_id", userID).Msg("authenticated user has no user record")
		user = models.UserWithBookings{}
	case err != nil:
		log.Err(err).Int64("user_id", userID).Int64("payment_id", id).Msg("error loading user bookings")
		return models.PaymentPublic{}, fmt.Errorf("%w: %w: %w", ErrPaymentNotFound, ErrPaymentLookupFailed, err)
	}

	payment, err := p.paymentRepository.FindPaymentByID(ctx, id)
	if errors.Is(err, store.ErrPaymentNotFound) {
		return models.PaymentPublic{}, fmt.Errorf("%w: %w", ErrPaymentNotFound, err)
	}
	if err != nil {
		log.Err(err).Int64("payment_id", id).Msg("error loading payment")
		return models.PaymentPublic{}, fmt.Errorf("%w: %w: %w", ErrPaymentNotFound, ErrPaymentLookupFailed, err)
	}

	public := payment.Public()
	if err = p.validator.Validate(ctx, public); err != nil {
		log.Err(err).Int64("payment_id", id).Msg("stored payment does not match public schema")
		return models.PaymentPublic{}, fmt.Errorf("%w: %w: %w", ErrPaymentNotFound, ErrPaymentSchemaMismatch, err)
	}

	if !user.OwnsBooking(public.BookingID) {
		log.Info().
			Int64("user_id", userID).
			Int64("payment_id", id).
			Int64("booking_id", public.BookingID).
			Msg("payment booking is not owned by user")
		return models.PaymentPublic{}, ErrUnauthorizedPaymentAccess
	}

	return public, nil
}
