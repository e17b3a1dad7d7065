package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/models"
)

// paymentRepository is the SQL-backed implementation of [PaymentRepository].
type paymentRepository struct {
	*DB
	logger *logger.Logger
}

// NewPaymentRepository constructs a [PaymentRepository] backed by db.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		DB:     db,
		logger: logger,
	}
}

// FindPaymentByID returns the full stored payment, including fields that are
// never exposed publicly (uid, app id, data, external id).
func (p *paymentRepository) FindPaymentByID(ctx context.Context, id int64) (models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPaymentByIDQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.FindPaymentByID").Msg("failed to build query")
		return models.Payment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		payment       models.Payment
		appID         sql.NullString
		data          []byte
		paymentOption sql.NullString
	)

	err = p.DB.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.UID,
		&appID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Fee,
		&payment.Currency,
		&payment.Success,
		&payment.Refunded,
		&data,
		&payment.ExternalID,
		&paymentOption,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "*paymentRepository.FindPaymentByID").
				Int64("payment_id", id).
				Msg("payment not found")
			return models.Payment{}, ErrPaymentNotFound
		}

		log.Err(err).
			Str("func", "*paymentRepository.FindPaymentByID").
			Int64("payment_id", id).
			Bool("retryable", p.isRetryable(err)).
			Msg("failed to query payment")
		return models.Payment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if appID.Valid {
		payment.AppID = &appID.String
	}
	if paymentOption.Valid {
		payment.PaymentOption = models.PaymentOption(paymentOption.String)
	}
	payment.Data = data

	return payment, nil
}
