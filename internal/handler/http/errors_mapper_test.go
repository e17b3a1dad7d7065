package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-booking-payments/internal/service"
	"github.com/MKhiriev/go-booking-payments/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unauthorized access", err: service.ErrUnauthorizedPaymentAccess, want: http.StatusUnauthorized},
		{name: "wrapped not found", err: fmt.Errorf("%w: %w", service.ErrPaymentNotFound, store.ErrPaymentNotFound), want: http.StatusNotFound},
		{name: "invalid id", err: fmt.Errorf("%w: gt", service.ErrInvalidPaymentID), want: http.StatusBadRequest},
		{name: "expired key", err: service.ErrAPIKeyExpired, want: http.StatusUnauthorized},
		{name: "unknown falls back", err: errors.New("boom"), want: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err, http.StatusTeapot))
		})
	}
}
