package service_mocks

// Reflect mode: the generated file must not import services.
//go:generate mockgen -destination=service_mocks.go -package=service_mocks banking-reports/internal/services FinancialReportServiceInterface,RegulatoryReportServiceInterface,RiskReportServiceInterface,CustomerReportServiceInterface,ReportDispatcherInterface,MetricsRecorderInterface
