package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-booking-payments/internal/validators"
	"github.com/MKhiriev/go-booking-payments/models"
)

// PaymentValidationService re-validates payment ids before delegating to the
// wrapped [PaymentService].
type PaymentValidationService struct {
	inner     PaymentService
	validator validators.Validator
}

func NewPaymentValidationService(validator validators.Validator) PaymentServiceWrapper {
	return &PaymentValidationService{
		validator: validator,
	}
}

func (v *PaymentValidationService) ValidatePaymentID(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPaymentID, err)
	}

	return v.inner.ValidatePaymentID(ctx, id)
}

func (v *PaymentValidationService) GetPaymentByID(ctx context.Context, userID, id int64) (models.PaymentPublic, error) {
	if err := v.ValidatePaymentID(ctx, id); err != nil {
		return models.PaymentPublic{}, err
	}

	return v.inner.GetPaymentByID(ctx, userID, id)
}

func (v *PaymentValidationService) Wrap(inner PaymentService) PaymentService {
	v.inner = inner
	return v
}
