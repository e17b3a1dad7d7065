package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-booking-payments/internal/app"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
	"github.com/MKhiriev/go-booking-payments/models"
	"github.com/go-chi/chi/v5"
)

// withValidQueryID parses the {id} path parameter into an int64 and
// stores it under [utils.QueryIDCtxKey]. Malformed or non-positive ids
// are answered with HTTP 400.
func (h *Handler) withValidQueryID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		rawID := chi.URLParam(r, "id")
		id, err := parseQueryID(rawID)
		if err == nil {
			err = h.services.PaymentService.ValidatePaymentID(ctx, id)
		}
		if err != nil {
			log.Err(err).Str("id", rawID).Msg("invalid query id")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidQueryID, &models.ErrorDetail{
				Name:    app.ErrNameValidation,
				Message: ErrInvalidQueryID.Error(),
			})
			return
		}

		ctx = context.WithValue(ctx, utils.QueryIDCtxKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseQueryID accepts only plain decimal digits, so signs and spaces
// are rejected before the value reaches the service layer.
func parseQueryID(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrInvalidQueryID
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, ErrInvalidQueryID
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidQueryID, err)
	}

	return id, nil
}
