package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/store"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
)

// authService is the concrete implementation of [AuthService].
// API keys are never stored in plain text: the incoming key is stripped of
// its prefix, hashed with HMAC-SHA256 and looked up by hash.
type authService struct {
	apiKeyRepository store.APIKeyRepository

	// hashKey is the HMAC secret used when hashing API keys. Must match the
	// value used when the keys were issued.
	hashKey string

	// prefix is stripped from incoming keys before hashing.
	prefix string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] using the API key settings of cfg.
func NewAuthService(apiKeyRepository store.APIKeyRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		apiKeyRepository: apiKeyRepository,
		hashKey:          cfg.APIKeyHashKey,
		prefix:           cfg.APIKeyPrefix,
		now:              time.Now,
		logger:           logger,
	}
}

// AuthenticateAPIKey returns the owner of rawKey.
//
// Errors:
//   - [ErrEmptyAPIKey] if rawKey is blank.
//   - [ErrInvalidAPIKey] if no stored key matches or the lookup fails.
//   - [ErrAPIKeyExpired] if the key's expiry is not in the future.
func (a *authService) AuthenticateAPIKey(ctx context.Context, rawKey string) (int64, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(rawKey) == "" {
		return 0, ErrEmptyAPIKey
	}

	hashedKey := utils.HashAPIKey(rawKey, a.prefix, a.hashKey)

	apiKey, err := a.apiKeyRepository.FindAPIKeyByHash(ctx, hashedKey)
	if err != nil {
		if !errors.Is(err, store.ErrAPIKeyNotFound) {
			log.Err(err).Msg("error looking up api key")
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}

	if apiKey.IsExpired(a.now()) {
		log.Info().Str("api_key_id", apiKey.ID).Int64("user_id", apiKey.UserID).Msg("expired api key used")
		return 0, ErrAPIKeyExpired
	}

	return apiKey.UserID, nil
}
