package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
)

// Registered once; promauto panics on duplicate registration.
var testMetrics = metrics.New()

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	mw := NewMetricsMiddleware(testMetrics)

	handlerCalled := false
	router := chi.NewRouter()
	router.Use(mw.Wrap)
	router.Get("/api/v1/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ord-123", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if !handlerCalled {
		t.Fatalf("next handler was not invoked")
	}

	counter := testMetrics.HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/orders/{id}", "200")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected counter to be 1, got %v", got)
	}
}

func TestRoutePattern_FallsBackToRawPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := routePattern(req); got != "/health" {
		t.Fatalf("expected raw path for unrouted request, got %q", got)
	}
}
