package services

import (
	"fmt"

	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var summaryPrinter = message.NewPrinter(language.English)

func formatAmount(d decimal.Decimal) string {
	return summaryPrinter.Sprintf("%d", d.Round(0).IntPart())
}

func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func formatRatio(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatCount(n int) string {
	return summaryPrinter.Sprintf("%d", n)
}

// summaryBuilder collects the projection of one document.
type summaryBuilder struct {
	metrics         []models.KeyMetric
	highlights      []string
	recommendations []string
}

func (b *summaryBuilder) metric(label, value string) {
	b.metrics = append(b.metrics, models.KeyMetric{Label: label, Value: value})
}

func (b *summaryBuilder) highlight(format string, args ...any) {
	b.highlights = append(b.highlights, fmt.Sprintf(format, args...))
}

func (b *summaryBuilder) recommend(format string, args ...any) {
	b.recommendations = append(b.recommendations, fmt.Sprintf(format, args...))
}

func (b *summaryBuilder) ratioCheck(name string, check models.RatioCheck) {
	if check.Compliant {
		b.highlight("%s of %s meets the %s minimum", name, formatPercent(check.Value), formatPercent(check.Minimum))
		return
	}
	b.highlight("%s of %s is below the %s minimum", name, formatPercent(check.Value), formatPercent(check.Minimum))
	b.recommend("Restore %s above %s", name, formatPercent(check.Minimum))
}

// Summarize projects a document onto its headline figures. It never recomputes.
func Summarize(doc models.ReportDocument) *models.ReportSummary {
	header := doc.Header()
	b := &summaryBuilder{}

	switch d := doc.(type) {
	case *models.IncomeStatement:
		summarizeIncomeStatement(b, d)
	case *models.BalanceSheet:
		summarizeBalanceSheet(b, d)
	case *models.CashFlowStatement:
		summarizeCashFlow(b, d)
	case *models.ProfitAndLoss:
		summarizeProfitAndLoss(b, d)
	case *models.BudgetVariance:
		summarizeBudgetVariance(b, d)
	case *models.SAMAMonthlyReport:
		summarizeSAMAMonthly(b, d)
	case *models.BaselIIIReport:
		summarizeBaselIII(b, d)
	case *models.AMLReport:
		summarizeAML(b, d)
	case *models.LCRReport:
		b.metric("LCR", formatPercent(d.LCR.Value))
		b.metric("HQLA", formatAmount(d.TotalHQLA))
		b.metric("Net Cash Outflows", formatAmount(d.NetCashOutflows))
		b.ratioCheck("LCR", d.LCR)
	case *models.NSFRReport:
		b.metric("NSFR", formatPercent(d.NSFR.Value))
		b.metric("Available Stable Funding", formatAmount(d.TotalASF))
		b.metric("Required Stable Funding", formatAmount(d.TotalRSF))
		b.ratioCheck("NSFR", d.NSFR)
	case *models.CapitalAdequacyReport:
		summarizeCapitalAdequacy(b, d)
	case *models.CreditRiskReport:
		summarizeCreditRisk(b, d)
	case *models.MarketRiskReport:
		summarizeMarketRisk(b, d)
	case *models.OperationalRiskReport:
		summarizeOperationalRisk(b, d)
	case *models.NPLAnalysisReport:
		summarizeNPL(b, d)
	case *models.LiquidityRiskReport:
		summarizeLiquidityRisk(b, d)
	case *models.VintageAnalysisReport:
		summarizeVintage(b, d)
	case *models.CustomerAcquisitionReport:
		summarizeAcquisition(b, d)
	case *models.CustomerRetentionReport:
		summarizeRetention(b, d)
	case *models.CustomerSatisfactionReport:
		summarizeSatisfaction(b, d)
	case *models.CustomerDemographicsReport:
		summarizeDemographics(b, d)
	case *models.CustomerBehaviorReport:
		summarizeBehavior(b, d)
	}

	if header.Basis == models.BasisPolicySimulation {
		b.highlight("Figures are simulated from policy ratios and are not booked amounts")
	}

	return &models.ReportSummary{
		ReportType:      header.Type,
		GeneratedAt:     header.GeneratedAt,
		KeyMetrics:      nonNil(b.metrics),
		Highlights:      nonNil(b.highlights),
		Recommendations: nonNil(b.recommendations),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func summarizeIncomeStatement(b *summaryBuilder, d *models.IncomeStatement) {
	b.metric("Total Revenue", formatAmount(d.Revenue.Total))
	b.metric("Total Expenses", formatAmount(d.Expenses.Total))
	b.metric("Net Income", formatAmount(d.NetIncome))
	b.metric("Net Margin", formatPercent(d.Metrics.NetMargin))
	if d.NetIncome.IsNegative() {
		b.highlight("The period closed with a net loss of %s", formatAmount(d.NetIncome.Abs()))
		b.recommend("Review operating expenses against revenue")
	}
	if d.Revenue.Total.IsZero() {
		b.highlight("No revenue was recorded in the period")
	}
}

func summarizeBalanceSheet(b *summaryBuilder, d *models.BalanceSheet) {
	b.metric("Total Assets", formatAmount(d.Assets.Total))
	b.metric("Total Liabilities", formatAmount(d.Liabilities.Total))
	b.metric("Total Equity", formatAmount(d.TotalEquity))
	b.metric("Debt to Equity", formatRatio(d.Metrics.DebtToEquity))
	if d.TotalEquity.IsNegative() {
		b.highlight("Liabilities exceed assets")
		b.recommend("Strengthen the capital base")
	}
}

func summarizeCashFlow(b *summaryBuilder, d *models.CashFlowStatement) {
	b.metric("Operating Cash Flow", formatAmount(d.Operating.Net))
	b.metric("Net Cash Flow", formatAmount(d.NetCashFlow))
	b.metric("Closing Balance", formatAmount(d.ClosingBalance))
	if d.Operating.Net.IsNegative() {
		b.highlight("Operating activities consumed cash")
	}
	if d.Reconciliation.SnapshotAvailable && !d.Reconciliation.Reconciled {
		b.highlight("Closing balance differs from the reported cash balance by %s", formatAmount(d.Reconciliation.Difference))
		b.recommend("Investigate unreconciled cash movements")
	}
}

func summarizeProfitAndLoss(b *summaryBuilder, d *models.ProfitAndLoss) {
	b.metric("Gross Profit", formatAmount(d.GrossProfit))
	b.metric("Operating Profit", formatAmount(d.OperatingProfit))
	b.metric("Net Profit", formatAmount(d.NetProfit))
	b.metric("Net Margin", formatPercent(d.Metrics.NetMargin))
	if d.NetProfit.IsNegative() {
		b.highlight("The period closed with a net loss")
		b.recommend("Review cost of funds and operating expense")
	}
}

func summarizeBudgetVariance(b *summaryBuilder, d *models.BudgetVariance) {
	b.metric("Revenue Variance", formatPercent(d.Revenue.VariancePercent))
	b.metric("Expense Variance", formatPercent(d.Expenses.VariancePercent))
	b.metric("Net Income Variance", formatAmount(d.NetIncome.Variance))
	for _, line := range d.Lines {
		if !line.Favorable {
			b.highlight("%s is unfavorable by %s", line.Line, formatAmount(line.Variance.Abs()))
		}
	}
	if !d.NetIncome.Favorable {
		b.recommend("Revisit the budget assumptions behind unfavorable lines")
	}
}

func summarizeSAMAMonthly(b *summaryBuilder, d *models.SAMAMonthlyReport) {
	b.metric("Total Deposits", formatAmount(d.TotalDeposits))
	b.metric("Loan to Deposit", formatPercent(d.LoanToDeposit.Value))
	b.metric("NPL Ratio", formatPercent(d.NPL.RatioByAmount))
	b.metric("Capital Adequacy", formatPercent(d.CapitalAdequacy.Value))
	if !d.LoanToDeposit.Compliant {
		b.highlight("Loan to deposit ratio exceeds the %s ceiling", formatPercent(d.LoanToDeposit.Maximum))
		b.recommend("Grow deposits or slow lending")
	}
	b.ratioCheck("Liquidity ratio", d.LiquidityRatio)
	b.ratioCheck("Capital adequacy", d.CapitalAdequacy)
}

func summarizeBaselIII(b *summaryBuilder, d *models.BaselIIIReport) {
	b.metric("CET1 Ratio", formatPercent(d.CET1Ratio.Value))
	b.metric("Tier 1 Ratio", formatPercent(d.Tier1Ratio.Value))
	b.metric("Total Capital Ratio", formatPercent(d.TotalCapitalRatio.Value))
	b.metric("Leverage Ratio", formatPercent(d.LeverageRatio.Value))
	b.ratioCheck("CET1 ratio", d.CET1Ratio)
	b.ratioCheck("Tier 1 ratio", d.Tier1Ratio)
	b.ratioCheck("Total capital ratio", d.TotalCapitalRatio)
	b.ratioCheck("Leverage ratio", d.LeverageRatio)
	b.ratioCheck("LCR", d.LCR)
	b.ratioCheck("NSFR", d.NSFR)
}

func summarizeAML(b *summaryBuilder, d *models.AMLReport) {
	b.metric("Large Transactions", formatCount(d.LargeTransactions.Count))
	b.metric("Structuring Suspects", formatCount(len(d.StructuringSuspects)))
	b.metric("High Risk Customers", formatCount(d.HighRiskCustomers))
	b.metric("KYC Completion", formatPercent(d.KYC.CompletionRate.Value))
	if len(d.StructuringSuspects) > 0 {
		b.highlight("%d customers show possible structuring", len(d.StructuringSuspects))
		b.recommend("File suspicious activity reviews for flagged customers")
	}
	if !d.KYC.CompletionRate.Compliant {
		b.recommend("Complete pending KYC verifications")
	}
}

func summarizeCapitalAdequacy(b *summaryBuilder, d *models.CapitalAdequacyReport) {
	b.metric("Capital Adequacy Ratio", formatPercent(d.CapitalAdequacy.Value))
	b.metric("CET1 Ratio", formatPercent(d.CET1Ratio.Value))
	b.metric("Total RWA", formatAmount(d.TotalRWA))
	b.metric("Capital Surplus", formatAmount(d.CapitalSurplus))
	b.ratioCheck("Capital adequacy ratio", d.CapitalAdequacy)
	if !d.CET1WithBuffer.Compliant {
		b.highlight("CET1 does not cover the conservation buffer")
		b.recommend("Restrict distributions until the buffer is rebuilt")
	}
}

func summarizeCreditRisk(b *summaryBuilder, d *models.CreditRiskReport) {
	b.metric("Total Exposure", formatAmount(d.TotalExposure))
	b.metric("Expected Loss", formatAmount(d.ExpectedLoss))
	b.metric("Coverage Ratio", formatPercent(d.CoverageRatio))
	b.metric("Top Concentration", formatPercent(d.Concentration.Percent))
	if d.NPLAmount.IsPositive() {
		b.highlight("Non-performing exposure stands at %s", formatAmount(d.NPLAmount))
	}
	if d.Concentration.Percent.GreaterThan(decimal.NewFromInt(25)) {
		b.recommend("Reduce single-name concentration in the top %d borrowers", d.Concentration.TopN)
	}
}

func summarizeMarketRisk(b *summaryBuilder, d *models.MarketRiskReport) {
	b.metric("Value at Risk", formatAmount(d.ValueAtRisk))
	b.metric("VaR Limit", formatAmount(d.VaRLimit))
	b.metric("Repricing Gap", formatAmount(d.RepricingGap))
	b.metric("NII Impact (+shock)", formatAmount(d.NIIImpactUp))
	if !d.WithinLimit {
		b.highlight("Value at risk exceeds its limit")
		b.recommend("Reduce the investment portfolio position")
	}
}

func summarizeOperationalRisk(b *summaryBuilder, d *models.OperationalRiskReport) {
	b.metric("Failure Rate", formatPercent(d.FailureRate))
	b.metric("Loss Events", formatCount(d.LossEventCount))
	b.metric("Capital Charge", formatAmount(d.CapitalCharge))
	for _, kri := range d.Indicators {
		if kri.Breached {
			b.highlight("%s of %s breaches its %s threshold", kri.Name, formatPercent(kri.Value), formatPercent(kri.Threshold))
			b.recommend("Investigate the drivers of %s", kri.Name)
		}
	}
}

func summarizeNPL(b *summaryBuilder, d *models.NPLAnalysisReport) {
	b.metric("NPL Ratio", formatPercent(d.RatioByAmount))
	b.metric("NPL Amount", formatAmount(d.NPLAmount))
	b.metric("Recovered", formatAmount(d.TotalRecovered))
	b.metric("Net Movement", formatAmount(d.Movement.NetMovement))
	if d.Movement.NetMovement.IsPositive() {
		b.highlight("The NPL stock grew by %s", formatAmount(d.Movement.NetMovement))
		b.recommend("Tighten collections on newly classified loans")
	}
}

func summarizeLiquidityRisk(b *summaryBuilder, d *models.LiquidityRiskReport) {
	b.metric("Total Assets", formatAmount(d.TotalAssets))
	b.metric("Total Liabilities", formatAmount(d.TotalLiabilities))
	if len(d.Buckets) > 0 {
		b.metric("Cumulative Gap", formatAmount(d.Buckets[len(d.Buckets)-1].CumulativeGap))
	}
	if d.FirstNegativeBucket != "" {
		b.highlight("Cumulative gap turns negative in the %s bucket", d.FirstNegativeBucket)
		b.recommend("Lengthen funding maturities ahead of %s", d.FirstNegativeBucket)
	}
}

func summarizeVintage(b *summaryBuilder, d *models.VintageAnalysisReport) {
	loans := 0
	for _, c := range d.Cohorts {
		loans += c.LoanCount
	}
	b.metric("Cohorts", formatCount(len(d.Cohorts)))
	b.metric("Loans", formatCount(loans))
	if len(d.FlowRates) > 0 {
		b.metric("Current to 1-30 Flow", formatPercent(d.FlowRates[0].Rate))
	}
	var worst *models.VintageCohort
	for i := range d.Cohorts {
		c := &d.Cohorts[i]
		if len(c.Curve) == 0 {
			continue
		}
		if worst == nil || c.Curve[len(c.Curve)-1].Cumulative90PlusRate.GreaterThan(worst.Curve[len(worst.Curve)-1].Cumulative90PlusRate) {
			worst = c
		}
	}
	if worst != nil && worst.Curve[len(worst.Curve)-1].Cumulative90PlusRate.IsPositive() {
		b.highlight("Cohort %s has the highest 90+ rate at %s", worst.Cohort, formatPercent(worst.Curve[len(worst.Curve)-1].Cumulative90PlusRate))
	}
}

func summarizeAcquisition(b *summaryBuilder, d *models.CustomerAcquisitionReport) {
	b.metric("New Customers", formatCount(d.NewCustomers))
	b.metric("Total Customers", formatCount(d.TotalCustomers))
	b.metric("Growth Rate", formatPercent(d.GrowthRate))
	if d.GrowthRate.IsNegative() {
		b.highlight("The customer base shrank over the period")
		b.recommend("Review acquisition channels")
	}
}

func summarizeRetention(b *summaryBuilder, d *models.CustomerRetentionReport) {
	b.metric("Retention Rate", formatPercent(d.RetentionRate))
	b.metric("Churn Rate", formatPercent(d.ChurnRate))
	b.metric("Churned", formatCount(d.Churned))
	for _, s := range d.BySegment {
		if s.ActiveAtStart > 0 && s.ChurnRate.GreaterThan(d.ChurnRate) {
			b.highlight("%s churn of %s is above average", s.Segment, formatPercent(s.ChurnRate))
		}
	}
	if d.ChurnRate.GreaterThan(decimal.NewFromInt(10)) {
		b.recommend("Launch retention outreach for at-risk customers")
	}
}

func summarizeSatisfaction(b *summaryBuilder, d *models.CustomerSatisfactionReport) {
	b.metric("CSAT", formatPercent(d.CSAT))
	b.metric("Average Score", formatRatio(d.AverageScore))
	b.metric("NPS", d.NPS.StringFixed(2))
	b.metric("Response Rate", formatPercent(d.ResponseRate))
	if d.NPS.IsNegative() {
		b.highlight("Detractors outnumber promoters")
		b.recommend("Follow up with detractors")
	}
}

func summarizeDemographics(b *summaryBuilder, d *models.CustomerDemographicsReport) {
	b.metric("Customers", formatCount(d.TotalCustomers))
	b.metric("Average Age", formatRatio(d.AverageAge))
	if top, ok := largestShare(d.AgeBands); ok {
		b.metric("Largest Age Band", top.Label)
	}
	if top, ok := largestShare(d.Region); ok {
		b.highlight("%s holds %s of customers", top.Label, formatPercent(top.Percent))
	}
}

func summarizeBehavior(b *summaryBuilder, d *models.CustomerBehaviorReport) {
	b.metric("Active Customers", formatCount(d.ActiveCustomers))
	b.metric("Average Transaction", formatAmount(d.AverageTransactionValue))
	b.metric("Products per Customer", formatRatio(d.ProductsPerCustomer))
	b.metric("Transactions per Customer", formatRatio(d.TransactionsPerCustomer))
	for _, tier := range d.FrequencyTiers {
		if tier.Label == tierInactive && tier.Count > 0 {
			b.highlight("%s of customers did not transact", formatPercent(tier.Percent))
			b.recommend("Re-engage inactive customers")
		}
	}
}

func largestShare(shares []models.CountShare) (models.CountShare, bool) {
	var top models.CountShare
	found := false
	for _, s := range shares {
		if s.Count > 0 && (!found || s.Count > top.Count) {
			top, found = s, true
		}
	}
	return top, found
}
