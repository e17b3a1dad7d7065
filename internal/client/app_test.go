package client

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-booking-payments/internal/adapter"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/mock"
	"github.com/MKhiriev/go-booking-payments/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewApp_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{name: "no ids", ids: nil, wantErr: ErrNoPaymentIDs},
		{name: "not a number", ids: []string{"1", "abc"}, wantErr: ErrInvalidPaymentID},
		{name: "zero", ids: []string{"0"}, wantErr: ErrInvalidPaymentID},
		{name: "negative", ids: []string{"-3"}, wantErr: ErrInvalidPaymentID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApp(nil, tt.ids, &bytes.Buffer{}, logger.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_PrintsResultsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockPaymentsAPI(ctrl)

	api.EXPECT().GetServerVersion(gomock.Any()).Return("1.0.0", nil)
	api.EXPECT().GetPayment(gomock.Any(), int64(3)).
		Return(models.PaymentPublic{ID: 3, Currency: "usd", BookingID: 9}, nil)
	api.EXPECT().GetPayment(gomock.Any(), int64(1)).
		Return(models.PaymentPublic{ID: 1, Currency: "eur", BookingID: 2}, nil)

	var out bytes.Buffer
	app, err := NewApp(api, []string{"3", "1"}, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id":3`)
	assert.Contains(t, lines[0], `"currency":"usd"`)
	assert.Contains(t, lines[1], `"id":1`)
}

func TestApp_Run_ReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockPaymentsAPI(ctrl)

	api.EXPECT().GetServerVersion(gomock.Any()).Return("1.0.0", nil)
	api.EXPECT().GetPayment(gomock.Any(), int64(5)).
		Return(models.PaymentPublic{}, fmt.Errorf("%w: Unauthorized", adapter.ErrUnauthorized))
	api.EXPECT().GetPayment(gomock.Any(), int64(6)).
		Return(models.PaymentPublic{ID: 6, Currency: "usd", BookingID: 1}, nil)

	var out bytes.Buffer
	app, err := NewApp(api, []string{"5", "6"}, &out, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())

	assert.ErrorIs(t, err, ErrFetchFailed)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"id":5,"error":"client unauthorized: Unauthorized"}`, lines[0])
	assert.Contains(t, lines[1], `"payment":`)
}

func TestApp_Run_LogsServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockPaymentsAPI(ctrl)

	gomock.InOrder(
		api.EXPECT().GetServerVersion(gomock.Any()).Return("v2.4.0", nil),
		api.EXPECT().GetPayment(gomock.Any(), int64(8)).
			Return(models.PaymentPublic{ID: 8, Currency: "USD", BookingID: 3}, nil),
	)

	var logs, out bytes.Buffer
	app, err := NewApp(api, []string{"8"}, &out, &logger.Logger{Logger: zerolog.New(&logs)})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, logs.String(), `"server_version":"v2.4.0"`)
	assert.Contains(t, out.String(), `"currency":"USD"`)
}

func TestApp_Run_VersionFailureDoesNotStopFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockPaymentsAPI(ctrl)

	api.EXPECT().GetServerVersion(gomock.Any()).Return("", adapter.ErrBadGateway)
	api.EXPECT().GetPayment(gomock.Any(), int64(8)).
		Return(models.PaymentPublic{ID: 8, Currency: "usd", BookingID: 3}, nil)

	var logs, out bytes.Buffer
	app, err := NewApp(api, []string{"8"}, &out, &logger.Logger{Logger: zerolog.New(&logs)})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, logs.String(), "could not read server version")
	assert.Contains(t, out.String(), `"id":8`)
}
