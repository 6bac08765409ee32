package services

import (
	"log/slog"

	"banking-reports/internal/config"
	"banking-reports/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// ReportEngine is the assembled report stack shared by the HTTP server and
// the command line.
type ReportEngine struct {
	Dispatcher ReportDispatcherInterface
	Breaker    *CircuitBreaker
	Metrics    *PrometheusMetrics
}

// NewGormLedgerReaders returns the gorm-backed readers over db
func NewGormLedgerReaders(db *gorm.DB) LedgerReaders {
	return LedgerReaders{
		Accounts:     repositories.NewAccountReader(db),
		Transactions: repositories.NewTransactionReader(db),
		Loans:        repositories.NewLoanReader(db),
		Customers:    repositories.NewCustomerReader(db),
		Snapshots:    repositories.NewSnapshotReader(db),
		Employees:    repositories.NewEmployeeReader(db),
	}
}

// NewReportEngine wires the readers, breaker, metrics, audit trail,
// calculators and dispatcher. Collectors are registered on reg.
func NewReportEngine(readers LedgerReaders, policy *config.Policy, cfg config.ReportsConfig, reg prometheus.Registerer) *ReportEngine {
	metrics := NewPrometheusMetrics(reg)
	audit := NewReportAuditLogger(slog.Default())

	breakerConfig := DefaultCircuitBreakerConfig()
	if cfg.BreakerMaxFailures > 0 {
		breakerConfig.MaxFailures = cfg.BreakerMaxFailures
	}
	if cfg.BreakerResetTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.BreakerResetTimeout
	}
	if cfg.BreakerHalfOpenRequests > 0 {
		breakerConfig.HalfOpenSuccesses = cfg.BreakerHalfOpenRequests
	}
	breaker := NewCircuitBreaker(breakerConfig)
	recordState := BreakerStateRecorder(metrics)
	breaker.OnStateChange = func(from, to CircuitBreakerState) {
		recordState(from, to)
		audit.LogCircuitBreakerStateChange(ledgerBreakerService, from, to)
	}

	loader := NewLedgerLoader(readers, breaker, metrics)

	dispatcher := newAuditedDispatcher(NewReportDispatcher(
		NewFinancialReportService(loader, policy),
		NewRegulatoryReportService(loader, policy),
		NewRiskReportService(loader, policy),
		NewCustomerReportService(loader, policy),
		metrics,
		cfg.RequestTimeout,
	), audit)

	return &ReportEngine{
		Dispatcher: dispatcher,
		Breaker:    breaker,
		Metrics:    metrics,
	}
}
