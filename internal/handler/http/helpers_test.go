package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-booking-payments/internal/config"
	"github.com/MKhiriev/go-booking-payments/internal/logger"
	"github.com/MKhiriev/go-booking-payments/internal/mock"
	"github.com/MKhiriev/go-booking-payments/internal/service"
	"go.uber.org/mock/gomock"
)

// fixedTraceIDs always hands out the same identifier.
type fixedTraceIDs string

func (f fixedTraceIDs) Generate() string { return string(f) }

// testServices bundles the gomock doubles behind a Handler.
type testServices struct {
	payments *mock.MockPaymentService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler creates a Handler with a nop logger and gomock services.
func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		payments: mock.NewMockPaymentService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		PaymentService: mocks.payments,
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())

	return h, mocks
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// serve runs req through the fully wired router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
