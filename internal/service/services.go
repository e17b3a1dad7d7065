package service

import (
	"fmt"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/store"
	"github.com/MKhiriev/go-booking-payments/internal/validators"
)

type Services struct {
	AuthService    AuthService
	PaymentService PaymentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	paymentValidator := validators.NewPaymentValidator()

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	paymentService := NewPaymentValidationService(paymentValidator).
		Wrap(NewPaymentService(storages.UserRepository, storages.PaymentRepository, paymentValidator, logger))

	return &Services{
		AuthService:    NewAuthService(storages.APIKeyRepository, cfg, logger),
		PaymentService: paymentService,
		AppInfoService: appInfoService,
	}, nil
}
