package http

import (
	"time"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/service"
	"github.com/MKhiriev/go-booking-payments/internal/utils"
)

// traceIDGenerator produces identifiers for requests arriving without
// an X-Trace-ID header.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	traceIDs       traceIDGenerator
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		traceIDs:       utils.NewTraceIDGenerator(),
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
