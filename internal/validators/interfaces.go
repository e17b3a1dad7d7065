// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks payment identifiers and stored payment records
// against the public payment schema before they reach a caller.
//
// Rules are expressed as go-playground/validator struct tags on
// models.PaymentPublic; [Validator] lets services depend on the check
// without depending on the library.
package validators

import "context"

//go:generate mockgen -destination=../mock/validator_mock.go -package=mock . Validator

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
