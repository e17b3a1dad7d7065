package store

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	userWithBookingsColumns = []string{
		"u.id", "u.email", "u.name", "u.created_at",
		"b.id", "b.uid", "b.user_id", "b.title", "b.start_time", "b.end_time", "b.status",
	}

	paymentColumns = []string{
		"id", "uid", "app_id", "booking_id", "amount", "fee", "currency",
		"success", "refunded", "data", "external_id", "payment_option",
	}

	apiKeyColumns = []string{
		"id", "user_id", "hashed_key", "expires_at", "created_at",
	}
)

// buildFindUserWithBookingsQuery selects the user row joined with every
// booking the user owns. A user without bookings yields one row with NULL
// booking columns.
func buildFindUserWithBookingsQuery(builder sq.StatementBuilderType, userID int64) (string, []any, error) {
	return builder.
		Select(userWithBookingsColumns...).
		From("users u").
		LeftJoin("bookings b ON b.user_id = u.id").
		Where(sq.Eq{"u.id": userID}).
		OrderBy("b.id").
		ToSql()
}

func buildFindPaymentByIDQuery(builder sq.StatementBuilderType, id int64) (string, []any, error) {
	return builder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func buildFindAPIKeyByHashQuery(builder sq.StatementBuilderType, hashedKey string) (string, []any, error) {
	return builder.
		Select(apiKeyColumns...).
		From("api_keys").
		Where(sq.Eq{"hashed_key": hashedKey}).
		Limit(1).
		ToSql()
}
