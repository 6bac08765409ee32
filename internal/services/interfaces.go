package services

import (
	"context"
	"time"

	"banking-reports/internal/models"
)

// FinancialReportServiceInterface builds the financial statements
type FinancialReportServiceInterface interface {
	IncomeStatement(ctx context.Context, req models.ReportRequest) (*models.IncomeStatement, error)
	BalanceSheet(ctx context.Context, req models.ReportRequest) (*models.BalanceSheet, error)
	CashFlow(ctx context.Context, req models.ReportRequest) (*models.CashFlowStatement, error)
	ProfitAndLoss(ctx context.Context, req models.ReportRequest) (*models.ProfitAndLoss, error)
	BudgetVariance(ctx context.Context, req models.ReportRequest) (*models.BudgetVariance, error)
}

// RegulatoryReportServiceInterface builds the prudential and compliance returns
type RegulatoryReportServiceInterface interface {
	SAMAMonthly(ctx context.Context, req models.ReportRequest) (*models.SAMAMonthlyReport, error)
	BaselIII(ctx context.Context, req models.ReportRequest) (*models.BaselIIIReport, error)
	AMLCFT(ctx context.Context, req models.ReportRequest) (*models.AMLReport, error)
	LCR(ctx context.Context, req models.ReportRequest) (*models.LCRReport, error)
	NSFR(ctx context.Context, req models.ReportRequest) (*models.NSFRReport, error)
	CapitalAdequacy(ctx context.Context, req models.ReportRequest) (*models.CapitalAdequacyReport, error)
}

// RiskReportServiceInterface builds the risk analytics
type RiskReportServiceInterface interface {
	CreditRisk(ctx context.Context, req models.ReportRequest) (*models.CreditRiskReport, error)
	MarketRisk(ctx context.Context, req models.ReportRequest) (*models.MarketRiskReport, error)
	OperationalRisk(ctx context.Context, req models.ReportRequest) (*models.OperationalRiskReport, error)
	NPLAnalysis(ctx context.Context, req models.ReportRequest) (*models.NPLAnalysisReport, error)
	LiquidityRisk(ctx context.Context, req models.ReportRequest) (*models.LiquidityRiskReport, error)
	VintageAnalysis(ctx context.Context, req models.ReportRequest) (*models.VintageAnalysisReport, error)
}

// CustomerReportServiceInterface builds the customer analytics
type CustomerReportServiceInterface interface {
	Acquisition(ctx context.Context, req models.ReportRequest) (*models.CustomerAcquisitionReport, error)
	Retention(ctx context.Context, req models.ReportRequest) (*models.CustomerRetentionReport, error)
	Satisfaction(ctx context.Context, req models.ReportRequest) (*models.CustomerSatisfactionReport, error)
	Demographics(ctx context.Context, req models.ReportRequest) (*models.CustomerDemographicsReport, error)
	Behavior(ctx context.Context, req models.ReportRequest) (*models.CustomerBehaviorReport, error)
}

// ReportDispatcherInterface is the single entry point used by transports
type ReportDispatcherInterface interface {
	Dispatch(ctx context.Context, req models.ReportRequest) (models.ReportDocument, error)
	Generate(ctx context.Context, req models.ReportRequest) *models.ReportEnvelope
	Summary(ctx context.Context, req models.ReportRequest) *models.ReportEnvelope
	Catalog() []models.CatalogEntry
}

// CircuitBreakerInterface defines the contract for circuit breaker pattern
type CircuitBreakerInterface interface {
	Execute(fn func() error) error
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerGeneratorInterface produces synthetic ledgers for seeding and tests
type LedgerGeneratorInterface interface {
	Generate(cfg LedgerGeneratorConfig) *models.LedgerFixture
}
