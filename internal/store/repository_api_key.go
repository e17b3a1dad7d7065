package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/models"
)

type apiKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewAPIKeyRepository constructs an [APIKeyRepository] backed by db.
func NewAPIKeyRepository(db *DB, logger *logger.Logger) APIKeyRepository {
	logger.Debug().Msg("creating api key repository")
	return &apiKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *apiKeyRepository) FindAPIKeyByHash(ctx context.Context, hashedKey string) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAPIKeyByHashQuery(a.builder, hashedKey)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.FindAPIKeyByHash").Msg("failed to build query")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		key       models.APIKey
		expiresAt sql.NullTime
	)

	err = a.DB.QueryRowContext(ctx, query, args...).Scan(
		&key.ID,
		&key.UserID,
		&key.HashedKey,
		&expiresAt,
		&key.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIKey{}, ErrAPIKeyNotFound
		}

		log.Err(err).
			Str("func", "*apiKeyRepository.FindAPIKeyByHash").
			Bool("retryable", a.isRetryable(err)).
			Msg("failed to query api key")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if expiresAt.Valid {
		key.ExpiresAt = &expiresAt.Time
	}

	return key, nil
}
