package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric event names accepted by MetricsRecorderInterface.
const (
	MetricReportGenerated     = "report.generated"
	MetricReportDuration      = "report.duration"
	MetricLedgerRead          = "ledger.read"
	MetricLedgerReadFailed    = "ledger.read.failed"
	MetricCircuitBreakerState = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	reportsGenerated    *prometheus.CounterVec
	reportDuration      *prometheus.HistogramVec
	ledgerReadDuration  *prometheus.HistogramVec
	ledgerReadFailures  *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the report collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report generation attempts",
			},
			[]string{"domain", "report_type", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"domain"},
		),
		ledgerReadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_read_duration_seconds",
				Help:    "Ledger read duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
			},
			[]string{"entity"},
		),
		ledgerReadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_read_failures_total",
				Help: "Total number of failed ledger reads",
			},
			[]string{"entity"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricReportGenerated:
		m.reportsGenerated.WithLabelValues(tags["domain"], tags["report_type"], tags["status"]).Inc()
	case MetricLedgerReadFailed:
		m.ledgerReadFailures.WithLabelValues(tags["entity"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	switch name {
	case MetricReportDuration:
		m.reportDuration.WithLabelValues(tags["domain"]).Observe(duration.Seconds())
	case MetricLedgerRead:
		m.ledgerReadDuration.WithLabelValues(tags["entity"]).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricCircuitBreakerState {
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
