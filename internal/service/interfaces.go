package service

import (
	"context"

	"github.com/MKhiriev/go-booking-payments/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . PaymentService,AuthService,AppInfoService

// PaymentService reads payments on behalf of an authenticated user.
type PaymentService interface {
	// ValidatePaymentID checks that id is an acceptable payment identifier.
	ValidatePaymentID(ctx context.Context, id int64) error

	// GetPaymentByID returns the public projection of payment id if its
	// booking belongs to userID.
	GetPaymentByID(ctx context.Context, userID, id int64) (models.PaymentPublic, error)
}

// AuthService resolves API keys to user identifiers.
type AuthService interface {
	// AuthenticateAPIKey returns the id of the user owning rawKey.
	AuthenticateAPIKey(ctx context.Context, rawKey string) (int64, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PaymentServiceWrapper defines middleware composition for PaymentService.
// Implementations wrap an existing PaymentService to add behavior such as
// logging or validating.
type PaymentServiceWrapper interface {
	Wrap(PaymentService) PaymentService
}
