package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/mock"
	"github.com/MKhiriev/go-booking-payments/internal/store"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
	"github.com/MKhiriev/go-booking-payments/models"
)

const (
	testHashKey = "test-hash-key"
	testPrefix  = "cal_"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockAPIKeyRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAPIKeyRepository(ctrl)

	svc := NewAuthService(repo, config.App{APIKeyHashKey: testHashKey, APIKeyPrefix: testPrefix}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return testNow }

	return svc, repo
}

func TestAuthenticateAPIKey_Valid(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	expires := testNow.Add(time.Hour)
	hash := utils.HashAPIKey("cal_secret", testPrefix, testHashKey)
	repo.EXPECT().FindAPIKeyByHash(ctx, hash).Return(models.APIKey{ID: "k1", UserID: 1, ExpiresAt: &expires}, nil)

	userID, err := svc.AuthenticateAPIKey(ctx, "cal_secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestAuthenticateAPIKey_PrefixIsOptional(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	// with and without the prefix the same hash is looked up
	hash := utils.HashAPIKey("secret", testPrefix, testHashKey)
	repo.EXPECT().FindAPIKeyByHash(ctx, hash).Return(models.APIKey{UserID: 3}, nil).Times(2)

	for _, raw := range []string{"cal_secret", "secret"} {
		userID, err := svc.AuthenticateAPIKey(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, int64(3), userID)
	}
}

func TestAuthenticateAPIKey_Empty(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	for _, raw := range []string{"", "   "} {
		_, err := svc.AuthenticateAPIKey(context.Background(), raw)
		assert.ErrorIs(t, err, ErrEmptyAPIKey)
	}
}

func TestAuthenticateAPIKey_Unknown(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindAPIKeyByHash(ctx, gomock.Any()).Return(models.APIKey{}, store.ErrAPIKeyNotFound)

	_, err := svc.AuthenticateAPIKey(ctx, "cal_unknown")

	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestAuthenticateAPIKey_LookupFailure(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindAPIKeyByHash(ctx, gomock.Any()).Return(models.APIKey{}, errors.New("db down"))

	_, err := svc.AuthenticateAPIKey(ctx, "cal_any")

	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestAuthenticateAPIKey_Expired(t *testing.T) {
	tests := []struct {
		name    string
		expires time.Time
	}{
		{name: "in the past", expires: testNow.Add(-time.Minute)},
		{name: "exactly now", expires: testNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)
			ctx := context.Background()

			expires := tt.expires
			repo.EXPECT().FindAPIKeyByHash(ctx, gomock.Any()).Return(models.APIKey{UserID: 1, ExpiresAt: &expires}, nil)

			_, err := svc.AuthenticateAPIKey(ctx, "cal_secret")

			assert.ErrorIs(t, err, ErrAPIKeyExpired)
		})
	}
}
