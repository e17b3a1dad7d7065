package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
	"github.com/MKhiriev/go-booking-payments/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const (
	defaultRetryBase  = 100 * time.Millisecond
	defaultMaxRetries = 3
)

type httpPaymentsAdapter struct {
	client *utils.HTTPClient

	apiKey string

	retryBase  time.Duration
	maxRetries uint64

	logger *logger.Logger
}

// NewHTTPPaymentsAdapter constructs an HTTP/REST implementation of
// [PaymentsAPI]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPPaymentsAdapter(cfg config.Client, logger *logger.Logger) (PaymentsAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpPaymentsAdapter{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		retryBase:  defaultRetryBase,
		maxRetries: defaultMaxRetries,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetPayment implements [PaymentsAPI]. It sends GET /v1/payments/{id} and
// decodes the "payment" member of the response. Transport failures and
// 5xx answers are retried with exponential backoff.
func (h *httpPaymentsAdapter) GetPayment(ctx context.Context, id int64) (models.PaymentPublic, error) {
	var result models.PaymentResponse

	err := retry.Do(ctx, h.backoff(), func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			SetPathParam("id", strconv.FormatInt(id, 10)).
			SetResult(&result).
			ForceContentType("application/json").
			Get("/v1/payments/{id}")
		if err != nil {
			return retry.RetryableError(fmt.Errorf("get payment request: %w", err))
		}

		if err = mapHTTPError(resp); err != nil {
			h.logger.Debug().Err(err).Int64("payment_id", id).Int("status", resp.StatusCode()).Msg("payment request rejected")
			if isRetryableStatus(resp.StatusCode()) {
				return retry.RetryableError(err)
			}
			return err
		}

		return nil
	})
	if err != nil {
		return models.PaymentPublic{}, err
	}

	return result.Payment, nil
}

// GetServerVersion implements [PaymentsAPI]. The endpoint is public, so no
// API key is attached.
func (h *httpPaymentsAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpPaymentsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.apiKey != "" {
		req.SetAuthToken(h.apiKey)
	}
	return req
}

func (h *httpPaymentsAdapter) backoff() retry.Backoff {
	return retry.WithMaxRetries(h.maxRetries, retry.NewExponential(h.retryBase))
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
