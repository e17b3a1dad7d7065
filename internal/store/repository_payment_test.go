package store

import (
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/models"
)

const selectPaymentSQL = `SELECT id, uid, app_id, booking_id, amount, fee, currency, success, refunded, data, external_id, payment_option FROM payments WHERE id = $1 LIMIT 1`

var paymentRowColumns = []string{
	"id", "uid", "app_id", "booking_id", "amount", "fee", "currency",
	"success", "refunded", "data", "external_id", "payment_option",
}

func TestFindPaymentByID_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows(paymentRowColumns).
		AddRow(int64(42), "pay_uid", "stripe", int64(7), int64(5000), int64(150), "usd",
			true, false, []byte(`{"k":"v"}`), "pi_123", "HOLD")
	mock.ExpectQuery(regexp.QuoteMeta(selectPaymentSQL)).WithArgs(int64(42)).WillReturnRows(rows)

	got, err := repo.FindPaymentByID(testContext(), 42)
	require.NoError(t, err)

	appID := "stripe"
	assert.Equal(t, models.Payment{
		ID:            42,
		UID:           "pay_uid",
		AppID:         &appID,
		BookingID:     7,
		Amount:        5000,
		Fee:           150,
		Currency:      "usd",
		Success:       true,
		Refunded:      false,
		Data:          []byte(`{"k":"v"}`),
		ExternalID:    "pi_123",
		PaymentOption: models.PaymentHold,
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPaymentByID_NullableColumns(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows(paymentRowColumns).
		AddRow(int64(42), "pay_uid", nil, int64(7), int64(5000), int64(0), "usd",
			false, false, []byte(`{}`), "pi_123", nil)
	mock.ExpectQuery(regexp.QuoteMeta(selectPaymentSQL)).WillReturnRows(rows)

	got, err := repo.FindPaymentByID(testContext(), 42)
	require.NoError(t, err)
	assert.Nil(t, got.AppID)
	assert.Empty(t, got.PaymentOption)
}

func TestFindPaymentByID_Errors(t *testing.T) {
	tests := []struct {
		name     string
		queryErr error
		wantErr  error
	}{
		{name: "no rows", queryErr: sql.ErrNoRows, wantErr: ErrPaymentNotFound},
		{name: "retryable driver error", queryErr: pgError(pgerrcode.DeadlockDetected), wantErr: ErrExecutingQuery},
		{name: "non retryable driver error", queryErr: pgError(pgerrcode.UndefinedTable), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewPaymentRepository(newDBFromSQL(db), logger.Nop())

			mock.ExpectQuery(regexp.QuoteMeta(selectPaymentSQL)).
				WithArgs(int64(999)).
				WillReturnError(tt.queryErr)

			_, err := repo.FindPaymentByID(testContext(), 999)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindPaymentByID_EmptyResult(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectPaymentSQL)).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns))

	_, err := repo.FindPaymentByID(testContext(), 999)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
