package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
)

const selectAPIKeySQL = `SELECT id, user_id, hashed_key, expires_at, created_at FROM api_keys WHERE hashed_key = $1 LIMIT 1`

var apiKeyRowColumns = []string{"id", "user_id", "hashed_key", "expires_at", "created_at"}

func TestFindAPIKeyByHash(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expires := created.Add(30 * 24 * time.Hour)

	tests := []struct {
		name        string
		expiresAt   any
		wantExpires *time.Time
	}{
		{name: "never expires", expiresAt: nil},
		{name: "with expiry", expiresAt: expires, wantExpires: &expires},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAPIKeyRepository(newDBFromSQL(db), logger.Nop())

			rows := sqlmock.NewRows(apiKeyRowColumns).AddRow("key-1", int64(1), "hash", tt.expiresAt, created)
			mock.ExpectQuery(regexp.QuoteMeta(selectAPIKeySQL)).WithArgs("hash").WillReturnRows(rows)

			got, err := repo.FindAPIKeyByHash(testContext(), "hash")
			require.NoError(t, err)
			assert.Equal(t, "key-1", got.ID)
			assert.Equal(t, int64(1), got.UserID)
			assert.Equal(t, "hash", got.HashedKey)
			assert.Equal(t, created, got.CreatedAt)
			assert.Equal(t, tt.wantExpires, got.ExpiresAt)
		})
	}
}

func TestFindAPIKeyByHash_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAPIKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectAPIKeySQL)).WillReturnRows(sqlmock.NewRows(apiKeyRowColumns))

	_, err := repo.FindAPIKeyByHash(testContext(), "unknown")
	assert.ErrorIs(t, err, ErrAPIKeyNotFound)
}

func TestFindAPIKeyByHash_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAPIKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectAPIKeySQL)).WillReturnError(errors.New("boom"))

	_, err := repo.FindAPIKeyByHash(testContext(), "hash")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
