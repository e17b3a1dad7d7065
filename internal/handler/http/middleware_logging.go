package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Only the path is
// logged: the query string may carry the caller's apiKey.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := newResponseWriter(w)
		next.ServeHTTP(lw, r)

		log.WithLevel(accessLogLevel(lw.status)).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
