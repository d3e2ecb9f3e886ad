package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type PrometheusMetrics struct {
	operationsTotal     *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	transferAmount      prometheus.Histogram
	activeWorkers       prometheus.Gauge
	accountsProvisioned prometheus.Counter
}

// NewPrometheusMetrics registers the simulation metrics with the given
// registerer. Each registerer can hold one instance.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations issued",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_microseconds",
				Help:    "Ledger operation duration in microseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transfer_amount",
				Help:    "Amounts moved by successful transfers",
				Buckets: prometheus.LinearBuckets(50, 50, 15),
			},
		),
		activeWorkers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_active_workers",
				Help: "Number of simulation workers currently running",
			},
		),
		accountsProvisioned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_accounts_provisioned_total",
				Help: "Total number of accounts successfully provisioned",
			},
		),
	}
}

func (pm *PrometheusMetrics) RecordOperation(operation, status string) {
	pm.operationsTotal.WithLabelValues(operation, status).Inc()
}

func (pm *PrometheusMetrics) ObserveOperationDuration(operation string, duration time.Duration) {
	pm.operationDuration.WithLabelValues(operation).Observe(float64(duration.Microseconds()))
}

func (pm *PrometheusMetrics) ObserveTransferAmount(amount decimal.Decimal) {
	value, _ := amount.Float64()
	pm.transferAmount.Observe(value)
}

func (pm *PrometheusMetrics) SetActiveWorkers(count int) {
	pm.activeWorkers.Set(float64(count))
}

func (pm *PrometheusMetrics) AddAccountsProvisioned(count int) {
	pm.accountsProvisioned.Add(float64(count))
}
