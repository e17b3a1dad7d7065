// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-booking-payments/internal/app"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/service"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
	"github.com/MKhiriev/go-booking-payments/models"
)

// paymentByID serves GET /v1/payments/{id}.
//
// The payment is returned only when its booking belongs to the
// authenticated user. A payment owned by someone else yields 401; any
// other failure, including a missing record, yields 404.
func (h *Handler) paymentByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, nil)
		return
	}

	id, ok := utils.GetQueryIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no query id in request context")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidQueryID, nil)
		return
	}

	payment, err := h.services.PaymentService.GetPaymentByID(ctx, userID, id)
	if err != nil {
		switch statusFromError(err, http.StatusNotFound) {
		case http.StatusUnauthorized:
			log.Warn().Err(err).Int64("user_id", userID).Int64("payment_id", id).Msg("payment access denied")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, nil)
		case http.StatusBadRequest:
			log.Err(err).Int64("payment_id", id).Msg("invalid payment id")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidQueryID, &models.ErrorDetail{
				Name:    app.ErrNameValidation,
				Message: ErrInvalidQueryID.Error(),
			})
		default:
			log.Err(err).Int64("payment_id", id).Msg("payment not found")
			utils.WriteError(w, http.StatusNotFound, fmt.Sprintf(app.MsgPaymentNotFoundFormat, id), &models.ErrorDetail{
				Name:    app.ErrNameNotFound,
				Message: notFoundDetail(err),
			})
		}
		return
	}

	if _, err = utils.WriteJSON(w, models.PaymentResponse{Payment: payment}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing payment response")
	}
}

// notFoundDetail names the class of a 404 without exposing the wrapped cause.
func notFoundDetail(err error) string {
	switch {
	case errors.Is(err, service.ErrPaymentSchemaMismatch):
		return service.ErrPaymentSchemaMismatch.Error()
	case errors.Is(err, service.ErrPaymentLookupFailed):
		return service.ErrPaymentLookupFailed.Error()
	default:
		return service.ErrPaymentNotFound.Error()
	}
}
