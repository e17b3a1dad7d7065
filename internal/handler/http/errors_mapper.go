package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-booking-payments/internal/service"
	"github.com/MKhiriev/go-booking-payments/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidPaymentID:          http.StatusBadRequest,
	service.ErrUnauthorizedPaymentAccess: http.StatusUnauthorized,
	service.ErrPaymentNotFound:           http.StatusNotFound,
	service.ErrEmptyAPIKey:               http.StatusUnauthorized,
	service.ErrInvalidAPIKey:             http.StatusUnauthorized,
	service.ErrAPIKeyExpired:             http.StatusUnauthorized,

	store.ErrPaymentNotFound: http.StatusNotFound,
	store.ErrNoUserWasFound:  http.StatusNotFound,
	store.ErrAPIKeyNotFound:  http.StatusUnauthorized,
}

// statusFromError maps err onto an HTTP status code, returning fallback
// when no sentinel in errorStatusMap matches.
func statusFromError(err error, fallback int) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return fallback
}
