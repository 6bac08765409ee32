package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	apperrors "banking-reports/internal/errors"
	"banking-reports/internal/models"
)

var (
	ErrUnsupportedReport = errors.New("unsupported report")
	ErrInvalidPeriod     = errors.New("invalid reporting period")
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type reportCalculator func(ctx context.Context, req models.ReportRequest) (models.ReportDocument, error)

// calculator lifts a typed service method into the dispatch table.
func calculator[D models.ReportDocument](fn func(context.Context, models.ReportRequest) (D, error)) reportCalculator {
	return func(ctx context.Context, req models.ReportRequest) (models.ReportDocument, error) {
		doc, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
}

type reportDispatcher struct {
	calculators map[models.Domain]map[models.ReportType]reportCalculator
	metrics     MetricsRecorderInterface
	timeout     time.Duration
}

// NewReportDispatcher wires every calculator into the (domain, report type)
// table. A zero timeout leaves the caller's context untouched.
func NewReportDispatcher(
	financial FinancialReportServiceInterface,
	regulatory RegulatoryReportServiceInterface,
	risk RiskReportServiceInterface,
	customer CustomerReportServiceInterface,
	metrics MetricsRecorderInterface,
	timeout time.Duration,
) ReportDispatcherInterface {
	return &reportDispatcher{
		calculators: map[models.Domain]map[models.ReportType]reportCalculator{
			models.DomainFinancial: {
				models.ReportIncomeStatement: calculator(financial.IncomeStatement),
				models.ReportBalanceSheet:    calculator(financial.BalanceSheet),
				models.ReportCashFlow:        calculator(financial.CashFlow),
				models.ReportProfitLoss:      calculator(financial.ProfitAndLoss),
				models.ReportBudgetVariance:  calculator(financial.BudgetVariance),
			},
			models.DomainRegulatory: {
				models.ReportSAMAMonthly:     calculator(regulatory.SAMAMonthly),
				models.ReportBaselIII:        calculator(regulatory.BaselIII),
				models.ReportAMLCFT:          calculator(regulatory.AMLCFT),
				models.ReportLCR:             calculator(regulatory.LCR),
				models.ReportNSFR:            calculator(regulatory.NSFR),
				models.ReportCapitalAdequacy: calculator(regulatory.CapitalAdequacy),
			},
			models.DomainRisk: {
				models.ReportCreditRisk:      calculator(risk.CreditRisk),
				models.ReportMarketRisk:      calculator(risk.MarketRisk),
				models.ReportOperationalRisk: calculator(risk.OperationalRisk),
				models.ReportNPLAnalysis:     calculator(risk.NPLAnalysis),
				models.ReportLiquidityRisk:   calculator(risk.LiquidityRisk),
				models.ReportVintage:         calculator(risk.VintageAnalysis),
			},
			models.DomainCustomer: {
				models.ReportAcquisition:  calculator(customer.Acquisition),
				models.ReportRetention:    calculator(customer.Retention),
				models.ReportSatisfaction: calculator(customer.Satisfaction),
				models.ReportDemographics: calculator(customer.Demographics),
				models.ReportBehavior:     calculator(customer.Behavior),
			},
		},
		metrics: metrics,
		timeout: timeout,
	}
}

func validatePeriod(p models.Period) error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidPeriod)
	}
	if p.StartDate.After(p.EndDate) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidPeriod,
			p.StartDate.Format(time.DateOnly), p.EndDate.Format(time.DateOnly))
	}
	return nil
}

func (d *reportDispatcher) resolve(req models.ReportRequest) (reportCalculator, error) {
	calc, ok := d.calculators[req.Domain][req.ReportType]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedReport, req.Domain, req.ReportType)
	}
	return calc, nil
}

// Dispatch computes one report document. Nothing is returned on failure.
func (d *reportDispatcher) Dispatch(ctx context.Context, req models.ReportRequest) (models.ReportDocument, error) {
	calc, err := d.resolve(req)
	if err != nil {
		return nil, err
	}
	if err := validatePeriod(req.Period); err != nil {
		return nil, err
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	doc, err := calc(ctx, req)
	d.record(req, time.Since(start), err)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate report",
			"domain", req.Domain,
			"report_type", req.ReportType,
			"start_date", req.Period.StartDate.Format(time.DateOnly),
			"end_date", req.Period.EndDate.Format(time.DateOnly),
			"error", err)
		return nil, err
	}
	return doc, nil
}

func (d *reportDispatcher) record(req models.ReportRequest, elapsed time.Duration, err error) {
	if d.metrics == nil {
		return
	}
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	d.metrics.IncrementCounter(MetricReportGenerated, map[string]string{
		"domain":      string(req.Domain),
		"report_type": string(req.ReportType),
		"status":      status,
	})
	d.metrics.RecordProcessingTime(MetricReportDuration, elapsed, map[string]string{
		"domain": string(req.Domain),
	})
}

func (d *reportDispatcher) Generate(ctx context.Context, req models.ReportRequest) *models.ReportEnvelope {
	doc, err := d.Dispatch(ctx, req)
	if err != nil {
		return failureEnvelope(err)
	}
	return models.SuccessEnvelope(doc)
}

func (d *reportDispatcher) Summary(ctx context.Context, req models.ReportRequest) *models.ReportEnvelope {
	doc, err := d.Dispatch(ctx, req)
	if err != nil {
		return failureEnvelope(err)
	}
	return models.SuccessEnvelope(Summarize(doc))
}

// Catalog lists every domain with its report types, both sorted.
func (d *reportDispatcher) Catalog() []models.CatalogEntry {
	domains := make([]models.Domain, 0, len(d.calculators))
	for domain := range d.calculators {
		domains = append(domains, domain)
	}
	sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

	entries := make([]models.CatalogEntry, 0, len(domains))
	for _, domain := range domains {
		types := make([]models.ReportType, 0, len(d.calculators[domain]))
		for reportType := range d.calculators[domain] {
			types = append(types, reportType)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		entries = append(entries, models.CatalogEntry{Domain: domain, ReportTypes: types})
	}
	return entries
}

// ErrorCode maps a dispatch failure onto its API error code.
func ErrorCode(err error) apperrors.ErrorCode {
	switch {
	case errors.Is(err, ErrUnsupportedReport):
		return apperrors.ReportUnsupported
	case errors.Is(err, ErrInvalidPeriod):
		return apperrors.ValidationInvalidPeriod
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ReportTimeout
	case errors.Is(err, ErrUpstreamRead):
		return apperrors.ReportLedgerUnavailable
	default:
		return apperrors.ReportGenerationFailed
	}
}

// failureEnvelope keeps reader details out of the message. Caller mistakes are
// echoed back as they are.
func failureEnvelope(err error) *models.ReportEnvelope {
	code := ErrorCode(err)
	message := apperrors.GetErrorMessage(code)
	if code == apperrors.ReportUnsupported || code == apperrors.ValidationInvalidPeriod {
		message = err.Error()
	}
	return models.FailureEnvelope(string(code), message)
}
