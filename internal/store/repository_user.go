package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It reads the "users" table joined with "bookings".
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// FindUserWithBookings loads the user and all of their bookings in a single
// LEFT JOIN query, ordered by booking id.
func (r *userRepository) FindUserWithBookings(ctx context.Context, userID int64) (models.UserWithBookings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserWithBookingsQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserWithBookings").Msg("failed to build query")
		return models.UserWithBookings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserWithBookings").
			Int64("user_id", userID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to execute query")
		return models.UserWithBookings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := models.UserWithBookings{Bookings: []models.Booking{}}
	found := false

	for rows.Next() {
		var (
			bookingID     sql.NullInt64
			bookingUID    sql.NullString
			bookingUserID sql.NullInt64
			title         sql.NullString
			startTime     sql.NullTime
			endTime       sql.NullTime
			status        sql.NullString
		)

		scanErr := rows.Scan(
			&result.UserID,
			&result.Email,
			&result.Name,
			&result.CreatedAt,
			&bookingID,
			&bookingUID,
			&bookingUserID,
			&title,
			&startTime,
			&endTime,
			&status,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.FindUserWithBookings").
				Int64("user_id", userID).
				Msg("failed to scan user row")
			return models.UserWithBookings{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		found = true

		// no bookings: the joined columns are NULL
		if !bookingID.Valid {
			continue
		}

		result.Bookings = append(result.Bookings, models.Booking{
			ID:        bookingID.Int64,
			UID:       bookingUID.String,
			UserID:    bookingUserID.Int64,
			Title:     title.String,
			StartTime: startTime.Time,
			EndTime:   endTime.Time,
			Status:    status.String,
		})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*userRepository.FindUserWithBookings").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return models.UserWithBookings{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if !found {
		return models.UserWithBookings{}, ErrNoUserWasFound
	}

	return result, nil
}
