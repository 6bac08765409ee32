package models

import "time"

type Domain string

type ReportType string

const (
	DomainFinancial  Domain = "financial"
	DomainRegulatory Domain = "regulatory"
	DomainRisk       Domain = "risk"
	DomainCustomer   Domain = "customer"
)

const (
	ReportIncomeStatement ReportType = "income_statement"
	ReportBalanceSheet    ReportType = "balance_sheet"
	ReportCashFlow        ReportType = "cash_flow"
	ReportProfitLoss      ReportType = "profit_loss"
	ReportBudgetVariance  ReportType = "budget_variance"

	ReportSAMAMonthly     ReportType = "sama_monthly"
	ReportBaselIII        ReportType = "basel_iii"
	ReportAMLCFT          ReportType = "aml_cft"
	ReportLCR             ReportType = "lcr"
	ReportNSFR            ReportType = "nsfr"
	ReportCapitalAdequacy ReportType = "capital_adequacy"

	ReportCreditRisk      ReportType = "credit_risk"
	ReportMarketRisk      ReportType = "market_risk"
	ReportOperationalRisk ReportType = "operational_risk"
	ReportNPLAnalysis     ReportType = "npl_analysis"
	ReportLiquidityRisk   ReportType = "liquidity_risk"
	ReportVintage         ReportType = "vintage_analysis"

	ReportAcquisition  ReportType = "acquisition"
	ReportRetention    ReportType = "retention"
	ReportSatisfaction ReportType = "satisfaction"
	ReportDemographics ReportType = "demographics"
	ReportBehavior     ReportType = "behavior"
)

// BasisPolicySimulation marks figures synthesised from policy ratios rather than booked amounts.
const BasisPolicySimulation = "policy_simulation"

// Period is an inclusive reporting window. Point-in-time reports use EndDate as their as-of date.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// AsOf is the instant point-in-time reports are measured at.
func (p Period) AsOf() time.Time {
	return p.EndDate
}

// EndOfDay is the last instant of EndDate, the inclusive upper bound for range reads.
func (p Period) EndOfDay() time.Time {
	y, m, d := p.EndDate.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), p.EndDate.Location())
}

// Filters optionally narrow the rows a calculator reads. Empty means all.
type Filters struct {
	AccountType string `json:"account_type,omitempty"`
	LoanType    string `json:"loan_type,omitempty"`
	Segment     string `json:"segment,omitempty"`
}

type ReportRequest struct {
	Domain     Domain     `json:"domain"`
	ReportType ReportType `json:"report_type"`
	Period     Period     `json:"period"`
	Filters    Filters    `json:"filters"`
}
