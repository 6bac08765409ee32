package services

import (
	"sort"
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

const unknownLabel = "unknown"

var hundred = decimal.NewFromInt(100)

// reportBase carries what every calculator needs: the ledger, the policy table and a clock.
type reportBase struct {
	loader *LedgerLoader
	policy *config.Policy
	now    func() time.Time
}

func newReportBase(loader *LedgerLoader, policy *config.Policy) reportBase {
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	return reportBase{
		loader: loader,
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (b reportBase) header(req models.ReportRequest, domain models.Domain, reportType models.ReportType) models.ReportHeader {
	return models.ReportHeader{
		Type:        reportType,
		Domain:      domain,
		Period:      req.Period,
		GeneratedAt: b.now(),
	}
}

func (b reportBase) simulatedHeader(req models.ReportRequest, domain models.Domain, reportType models.ReportType) models.ReportHeader {
	h := b.header(req, domain, reportType)
	h.Basis = models.BasisPolicySimulation
	return h
}

func optional(value string) []string {
	if value == "" {
		return nil
	}
	return []string{value}
}

// periodQuery is the transaction window [start, end of the end date].
func periodQuery(req models.ReportRequest, statuses ...string) models.TransactionQuery {
	return models.TransactionQuery{
		From:     req.Period.StartDate,
		To:       req.Period.EndOfDay(),
		Statuses: statuses,
	}
}

// bookQuery reads the loans disbursed up to the end of the period.
func bookQuery(req models.ReportRequest) models.LoanQuery {
	asOf := req.Period.EndOfDay()
	return models.LoanQuery{
		Types:       optional(req.Filters.LoanType),
		DisbursedTo: &asOf,
	}
}

// depositQuery reads the accounts opened up to the end of the period.
func depositQuery(req models.ReportRequest) models.AccountQuery {
	asOf := req.Period.EndOfDay()
	return models.AccountQuery{
		Types:        optional(req.Filters.AccountType),
		OpenedBefore: &asOf,
	}
}

func customerQuery(req models.ReportRequest) models.CustomerQuery {
	asOf := req.Period.EndOfDay()
	return models.CustomerQuery{
		Segments:      optional(req.Filters.Segment),
		CreatedBefore: &asOf,
	}
}

func inPeriod(t time.Time, period models.Period) bool {
	return !t.Before(period.StartDate) && !t.After(period.EndOfDay())
}

func withinPeriod(t *time.Time, period models.Period) bool {
	return t != nil && inPeriod(*t, period)
}

// periodMonths is the number of calendar months the period touches, at least one.
func periodMonths(period models.Period) int {
	start, end := period.StartDate, period.EndDate
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 1 {
		return 1
	}
	return months
}

// countShares turns labelled counts into a distribution that sums to 100.
func countShares(labels []string, counts map[string]int) []models.CountShare {
	raw := make([]int64, len(labels))
	for i, label := range labels {
		raw[i] = int64(counts[label])
	}
	percents := aggregation.Percentages(raw)

	out := make([]models.CountShare, len(labels))
	for i, label := range labels {
		out[i] = models.CountShare{Label: label, Count: counts[label], Percent: percents[i]}
	}
	return out
}

// amountShares distributes by amount when byAmount is set, by count otherwise.
func amountShares(labels []string, counts map[string]int, amounts map[string]decimal.Decimal, byAmount bool) []models.AmountShare {
	var percents []decimal.Decimal
	if byAmount {
		values := make([]decimal.Decimal, len(labels))
		for i, label := range labels {
			values[i] = amounts[label]
		}
		percents = aggregation.Shares(values)
	} else {
		raw := make([]int64, len(labels))
		for i, label := range labels {
			raw[i] = int64(counts[label])
		}
		percents = aggregation.Percentages(raw)
	}

	out := make([]models.AmountShare, len(labels))
	for i, label := range labels {
		amount, ok := amounts[label]
		if !ok {
			amount = decimal.Zero
		}
		out[i] = models.AmountShare{Label: label, Count: counts[label], Amount: amount, Percent: percents[i]}
	}
	return out
}

// orderedLabels returns the preferred labels followed by any other observed label, sorted.
func orderedLabels(preferred []string, observed map[string]int) []string {
	out := append([]string{}, preferred...)
	known := make(map[string]bool, len(preferred))
	for _, label := range preferred {
		known[label] = true
	}
	var extra []string
	for label := range observed {
		if !known[label] {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func labelOrUnknown(value string) string {
	if value == "" {
		return unknownLabel
	}
	return value
}
