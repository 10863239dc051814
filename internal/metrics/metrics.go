package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	FeeRecordsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fee_records_created_total",
			Help: "Total number of student fee records created",
		},
	)

	FeeGenerationsRun = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fee_generations_run_total",
			Help: "Total number of bulk fee generation runs",
		},
	)

	PayGenerationsRun = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pay_generations_run_total",
			Help: "Total number of bulk teacher pay generation runs",
		},
	)

	LedgerPopulations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_populations_total",
			Help: "Total number of ledger populate runs",
		},
	)

	OnlinePaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "online_payments_total",
			Help: "Total number of online fee payments by status",
		},
		[]string{"status"},
	)
)
