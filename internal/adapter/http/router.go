package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/shopdesk/shopdesk/internal/adapter/http/handler"
	"github.com/shopdesk/shopdesk/internal/adapter/http/middleware"
	"github.com/shopdesk/shopdesk/internal/infrastructure/metrics"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	OrderHandler     *handler.OrderHandler
	InvoiceHandler   *handler.InvoiceHandler
	AccountHandler   *handler.AccountHandler
	IncentiveHandler *handler.IncentiveHandler
	ProductHandler   *handler.ProductHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Orders and invoices
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", cfg.OrderHandler.Create)
			r.Get("/", cfg.OrderHandler.List)
			r.Get("/{id}", cfg.OrderHandler.Get)
			r.Get("/{id}/invoice", cfg.InvoiceHandler.Get)
		})

		// Bank accounts and the running-balance ledger
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/transactions", cfg.AccountHandler.ListTransactions)
			r.Post("/{id}/transactions", cfg.AccountHandler.RecordTransaction)
		})

		// Employee incentives and withdrawals
		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/incentives", cfg.IncentiveHandler.ListIncentives)
			r.Get("/incentives/balance", cfg.IncentiveHandler.GetBalance)
			r.Get("/withdrawals", cfg.IncentiveHandler.ListWithdrawals)
			r.Post("/withdrawals", cfg.IncentiveHandler.Withdraw)
		})

		// Products
		r.Route("/products", func(r chi.Router) {
			r.Post("/", cfg.ProductHandler.Create)
			r.Get("/", cfg.ProductHandler.List)
			r.Get("/{id}", cfg.ProductHandler.Get)
		})
	})

	return r
}
