package services

import (
	"context"
	"log/slog"
	"time"

	apperrors "banking-reports/internal/errors"
	"banking-reports/internal/models"
)

// ReportAuditLogger writes the audit trail of report access: one event per
// generated or failed report and one per ledger breaker transition.
type ReportAuditLogger struct {
	logger *slog.Logger
}

func NewReportAuditLogger(logger *slog.Logger) *ReportAuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportAuditLogger{
		logger: logger.With(slog.String("component", "report_audit")),
	}
}

func reportAttrs(eventType string, req models.ReportRequest, elapsed time.Duration) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("event_type", eventType),
		slog.String("domain", string(req.Domain)),
		slog.String("report_type", string(req.ReportType)),
		slog.String("start_date", req.Period.StartDate.Format(time.DateOnly)),
		slog.String("end_date", req.Period.EndDate.Format(time.DateOnly)),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	}
	if req.Filters.AccountType != "" {
		attrs = append(attrs, slog.String("account_type", req.Filters.AccountType))
	}
	if req.Filters.LoanType != "" {
		attrs = append(attrs, slog.String("loan_type", req.Filters.LoanType))
	}
	if req.Filters.Segment != "" {
		attrs = append(attrs, slog.String("segment", req.Filters.Segment))
	}
	return attrs
}

func (al *ReportAuditLogger) LogReportGenerated(ctx context.Context, req models.ReportRequest, elapsed time.Duration) {
	al.logger.LogAttrs(ctx, slog.LevelInfo, "report generated", reportAttrs("report_generated", req, elapsed)...)
}

func (al *ReportAuditLogger) LogReportFailed(ctx context.Context, req models.ReportRequest, elapsed time.Duration, err error) {
	code := ErrorCode(err)
	attrs := append(reportAttrs("report_failed", req, elapsed),
		slog.String("error_code", string(code)),
		slog.String("error_category", code.Category()),
		slog.String("error", err.Error()),
	)
	level := slog.LevelWarn
	if code.Category() != "VALIDATION" && code != apperrors.ReportUnsupported {
		level = slog.LevelError
	}
	al.logger.LogAttrs(ctx, level, "report failed", attrs...)
}

func (al *ReportAuditLogger) LogCircuitBreakerStateChange(service string, from, to CircuitBreakerState) {
	al.logger.LogAttrs(context.Background(), slog.LevelWarn, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", from.String()),
		slog.String("new_state", to.String()),
	)
}

// auditedDispatcher records every dispatch in the audit trail
type auditedDispatcher struct {
	next  ReportDispatcherInterface
	audit *ReportAuditLogger
	now   func() time.Time
}

func newAuditedDispatcher(next ReportDispatcherInterface, audit *ReportAuditLogger) ReportDispatcherInterface {
	return &auditedDispatcher{next: next, audit: audit, now: time.Now}
}

func (d *auditedDispatcher) Dispatch(ctx context.Context, req models.ReportRequest) (models.ReportDocument, error) {
	start := d.now()
	doc, err := d.next.Dispatch(ctx, req)
	elapsed := d.now().Sub(start)
	if err != nil {
		d.audit.LogReportFailed(ctx, req, elapsed, err)
		return nil, err
	}
	d.audit.LogReportGenerated(ctx, req, elapsed)
	return doc, nil
}

func (d *auditedDispatcher) Generate(ctx context.Context, req models.ReportRequest) *models.ReportEnvelope {
	doc, err := d.Dispatch(ctx, req)
	if err != nil {
		return failureEnvelope(err)
	}
	return models.SuccessEnvelope(doc)
}

func (d *auditedDispatcher) Summary(ctx context.Context, req models.ReportRequest) *models.ReportEnvelope {
	doc, err := d.Dispatch(ctx, req)
	if err != nil {
		return failureEnvelope(err)
	}
	return models.SuccessEnvelope(Summarize(doc))
}

func (d *auditedDispatcher) Catalog() []models.CatalogEntry {
	return d.next.Catalog()
}
