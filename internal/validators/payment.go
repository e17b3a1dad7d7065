package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-booking-payments/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation of a [models.PaymentPublic]
// to a subset of its fields. Values are Go struct field names as expected by
// the underlying validator.
const (
	// FieldID targets the payment identifier.
	FieldID = "ID"

	// FieldAmount targets the charged amount in minor units.
	FieldAmount = "Amount"

	// FieldFee targets the processing fee in minor units.
	FieldFee = "Fee"

	// FieldCurrency targets the ISO 4217 currency code.
	FieldCurrency = "Currency"

	// FieldPaymentOption targets the payment option (ON_BOOKING or HOLD).
	FieldPaymentOption = "PaymentOption"

	// FieldBookingID targets the booking the payment was made against.
	FieldBookingID = "BookingID"
)

var knownPaymentFields = map[string]struct{}{
	FieldID:            {},
	FieldAmount:        {},
	FieldFee:           {},
	FieldCurrency:      {},
	FieldPaymentOption: {},
	FieldBookingID:     {},
}

// PaymentValidator validates payment identifiers and the public payment
// schema using struct tags declared on [models.PaymentPublic].
type PaymentValidator struct {
	validate *validator.Validate
}

// NewPaymentValidator returns a [Validator] for payment ids and payments.
func NewPaymentValidator() Validator {
	return &PaymentValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj:
//   - int64: a payment id, must be positive.
//   - models.Payment: projected to the public schema first.
//   - models.PaymentPublic: validated against its struct tags, optionally
//     restricted to fields.
func (v *PaymentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case int64:
		return v.validatePaymentID(ctx, value)

	case models.PaymentPublic:
		return v.validatePublicPayment(ctx, value, fields...)
	case *models.PaymentPublic:
		if value == nil {
			return ErrNilPayment
		}
		return v.validatePublicPayment(ctx, *value, fields...)

	case models.Payment:
		return v.validatePublicPayment(ctx, value.Public(), fields...)
	case *models.Payment:
		if value == nil {
			return ErrNilPayment
		}
		return v.validatePublicPayment(ctx, value.Public(), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PaymentValidator) validatePaymentID(ctx context.Context, id int64) error {
	if err := v.validate.VarCtx(ctx, id, "gt=0"); err != nil {
		return fmt.Errorf("%w: %d", ErrInvalidPaymentID, id)
	}
	return nil
}

func (v *PaymentValidator) validatePublicPayment(ctx context.Context, payment models.PaymentPublic, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, payment)
	} else {
		for _, f := range fields {
			if _, ok := knownPaymentFields[f]; !ok {
				return ErrUnknownField
			}
		}
		err = v.validate.StructPartialCtx(ctx, payment, fields...)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicPayment, err)
	}

	return nil
}
