package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-booking-payments/internal/service"
	"github.com/MKhiriev/go-booking-payments/internal/store"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
	"github.com/MKhiriev/go-booking-payments/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- getAPIKeyFromAuthHeader ----

func TestGetAPIKeyFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantKey string
		wantErr error
	}{
		{name: "valid Bearer key", header: "Bearer cal_abc", wantKey: "cal_abc"},
		{name: "scheme is case-insensitive", header: "bearer cal_abc", wantKey: "cal_abc"},
		{name: "missing key part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank key part", header: "Bearer   ", wantErr: ErrEmptyToken},
		{name: "Basic scheme rejected", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := getAPIKeyFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

// ---- apiKeyFromRequest ----

func TestAPIKeyFromRequest_QueryTakesPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?apiKey=cal_query", nil)
	req.Header.Set("Authorization", "Bearer cal_header")

	key, err := apiKeyFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "cal_query", key)
}

func TestAPIKeyFromRequest_NoKey(t *testing.T) {
	_, err := apiKeyFromRequest(httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.ErrorIs(t, err, ErrNoAPIKeyProvided)
}

// ---- auth middleware ----

func executeAuth(h *Handler, target, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, target, nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		authHeader  string
		wantKey     string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no key at all",
			target:      "/x",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "No apiKey provided",
		},
		{
			name:        "malformed Authorization header",
			target:      "/x",
			authHeader:  "Token abc",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "No apiKey provided",
		},
		{
			name:        "unknown key",
			target:      "/x?apiKey=cal_bad",
			wantKey:     "cal_bad",
			serviceErr:  fmt.Errorf("%w: %w", service.ErrInvalidAPIKey, store.ErrAPIKeyNotFound),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Your apiKey is not valid",
		},
		{
			name:        "expired key",
			target:      "/x",
			authHeader:  "Bearer cal_old",
			wantKey:     "cal_old",
			serviceErr:  service.ErrAPIKeyExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Your apiKey is expired",
		},
		{
			name:        "key rejected as empty by service",
			target:      "/x?apiKey=cal_",
			wantKey:     "cal_",
			serviceErr:  service.ErrEmptyAPIKey,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "No apiKey provided",
		},
		{
			name:       "valid key",
			target:     "/x?apiKey=cal_good",
			wantKey:    "cal_good",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			if tt.wantKey != "" {
				mocks.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), tt.wantKey).Return(testUserID, tt.serviceErr)
			}

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.target, tt.authHeader, next)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testUserID, gotUserID)
				return
			}

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Zero(t, gotUserID, "next must not be called")
		})
	}
}
