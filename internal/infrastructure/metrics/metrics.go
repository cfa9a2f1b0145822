package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Order metrics
	OrdersCreated prometheus.Counter
	OrderTotal    prometheus.Histogram

	// Invoice metrics
	InvoicesRendered prometheus.Counter

	// Bank transaction metrics
	TransactionsRecorded *prometheus.CounterVec
	TransactionAmount    prometheus.Histogram
	LedgerPagesServed    prometheus.Counter

	// Withdrawal metrics
	WithdrawalsAccepted prometheus.Counter
	WithdrawalsRejected *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBConnections prometheus.Gauge

	// Rate limiting metrics. No per-client label; the client set is
	// unbounded.
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopdesk_orders_created_total",
			Help: "Total number of orders created",
		}),
		OrderTotal: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopdesk_order_total_amount",
			Help:    "Grand totals of created orders",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		InvoicesRendered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopdesk_invoices_rendered_total",
			Help: "Total number of invoices rendered",
		}),

		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopdesk_transactions_recorded_total",
				Help: "Total bank transactions recorded by type",
			},
			[]string{"type"},
		),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopdesk_transaction_amount",
			Help:    "Bank transaction amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		LedgerPagesServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopdesk_ledger_pages_served_total",
			Help: "Total running-balance ledger pages served",
		}),

		WithdrawalsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopdesk_withdrawals_accepted_total",
			Help: "Total incentive withdrawals accepted",
		}),
		WithdrawalsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopdesk_withdrawals_rejected_total",
				Help: "Total incentive withdrawals rejected by reason",
			},
			[]string{"reason"},
		),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopdesk_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shopdesk_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shopdesk_db_connections",
			Help: "Current number of database connections",
		}),

		RateLimitHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopdesk_rate_limit_hits_total",
			Help: "Total rate limit hits",
		}),
	}
}
