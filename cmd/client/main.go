package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-booking-payments/internal/adapter"
	"github.com/MKhiriev/go-booking-payments/internal/client"
	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries only payment lines
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("payments-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPPaymentsAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create payments adapter")
	}

	app, err := client.NewApp(api, cfg.PaymentIDs, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
