// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// PaymentOption describes when a payment is collected.
type PaymentOption string

const (
	// PaymentOnBooking charges the attendee at booking time.
	PaymentOnBooking PaymentOption = "ON_BOOKING"
	// PaymentHold places a hold that is captured later.
	PaymentHold PaymentOption = "HOLD"
)

// Payment is a stored monetary transaction associated with exactly one Booking.
//
// The record carries provider-specific internal fields (UID, AppID, Data,
// ExternalID) that must never leave the server. Use [Payment.Public] to
// obtain the externally safe projection.
type Payment struct {
	// ID is the unique numeric identifier of the payment.
	ID int64 `json:"id"`

	// UID is the internal unique string identifier. Internal only.
	UID string `json:"-"`

	// AppID names the payment app that processed the payment, if any. Internal only.
	AppID *string `json:"-"`

	// BookingID references the booking the payment was made against.
	BookingID int64 `json:"bookingId"`

	// Amount is the charged amount in the smallest currency unit.
	Amount int64 `json:"amount"`

	// Fee is the processing fee in the smallest currency unit.
	Fee int64 `json:"fee"`

	// Currency is the ISO 4217 currency code, stored as the provider sent it.
	Currency string `json:"currency"`

	// Success reports whether the payment went through.
	Success bool `json:"success"`

	// Refunded reports whether the payment was refunded.
	Refunded bool `json:"refunded"`

	// Data is the raw provider payload. Internal only.
	Data json.RawMessage `json:"-"`

	// ExternalID is the provider-side identifier. Internal only.
	ExternalID string `json:"-"`

	// PaymentOption tells when the payment is collected.
	PaymentOption PaymentOption `json:"paymentOption"`
}

// TableName returns the name of the database table
// associated with the Payment model.
func (p Payment) TableName() string {
	return "payments"
}

// Public projects the stored payment onto [PaymentPublic], dropping every
// internal-only field.
func (p Payment) Public() PaymentPublic {
	return PaymentPublic{
		ID:            p.ID,
		Amount:        p.Amount,
		Success:       p.Success,
		Refunded:      p.Refunded,
		Fee:           p.Fee,
		PaymentOption: p.PaymentOption,
		Currency:      p.Currency,
		BookingID:     p.BookingID,
	}
}

// PaymentPublic is the externally safe projection of a [Payment].
// Its validate tags are shape checks only: a stored record passes as long as
// its required fields are present and its payment option is a known one.
// Values are not range- or case-checked.
type PaymentPublic struct {
	ID            int64         `json:"id" validate:"required"`
	Amount        int64         `json:"amount"`
	Success       bool          `json:"success"`
	Refunded      bool          `json:"refunded"`
	Fee           int64         `json:"fee"`
	PaymentOption PaymentOption `json:"paymentOption" validate:"omitempty,oneof=ON_BOOKING HOLD"`
	Currency      string        `json:"currency" validate:"required"`
	BookingID     int64         `json:"bookingId" validate:"required"`
}
