package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-booking-payments/internal/adapter"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/workers"
	"github.com/MKhiriev/go-booking-payments/models"
)

// maxConcurrentFetches bounds the requests in flight against the API.
const maxConcurrentFetches = 4

type App struct {
	api adapter.PaymentsAPI
	ids []int64
	out io.Writer

	logger *logger.Logger
}

// fetchResult is printed as one JSON line per requested id.
type fetchResult struct {
	ID      int64                 `json:"id"`
	Payment *models.PaymentPublic `json:"payment,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func NewApp(api adapter.PaymentsAPI, paymentIDs []string, out io.Writer, logger *logger.Logger) (*App, error) {
	if len(paymentIDs) == 0 {
		return nil, ErrNoPaymentIDs
	}

	ids := make([]int64, 0, len(paymentIDs))
	for _, raw := range paymentIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentID, raw)
		}
		ids = append(ids, id)
	}

	return &App{api: api, ids: ids, out: out, logger: logger}, nil
}

// Run logs the server version, then fetches every payment and writes the
// results in the order the ids were given. A failed fetch is reported in its
// line and makes Run return [ErrFetchFailed] once all lines are written.
func (a *App) Run(ctx context.Context) error {
	a.logServerVersion(ctx)

	results := make([]fetchResult, len(a.ids))

	jobs := workers.NewWorkers(maxConcurrentFetches)
	for i, id := range a.ids {
		jobs.Add(workers.WorkerFunc(func(ctx context.Context) error {
			results[i] = a.fetch(ctx, id)
			return nil
		}))
	}

	if err := jobs.Run(ctx); err != nil {
		return fmt.Errorf("fetch payments: %w", err)
	}

	failed := 0
	enc := json.NewEncoder(a.out)
	for _, result := range results {
		if result.Error != "" {
			failed++
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFetchFailed, failed, len(results))
	}
	return nil
}

func (a *App) fetch(ctx context.Context, id int64) fetchResult {
	payment, err := a.api.GetPayment(ctx, id)
	if err != nil {
		a.logger.Err(err).Int64("payment_id", id).Msg("error fetching payment")
		return fetchResult{ID: id, Error: err.Error()}
	}

	return fetchResult{ID: id, Payment: &payment}
}

// logServerVersion is informational; a failure does not stop the fetches.
func (a *App) logServerVersion(ctx context.Context) {
	version, err := a.api.GetServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not read server version")
		return
	}
	a.logger.Debug().Str("server_version", version).Msg("connected to payments API")
}
