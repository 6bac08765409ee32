package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StageStandard    = "standard"
	StageWatchlist   = "watchlist"
	StageSubstandard = "substandard"
	StageDoubtful    = "doubtful"
	StageLoss        = "loss"
)

type StageLine struct {
	Stage         string          `json:"stage"`
	Count         int             `json:"count"`
	Exposure      decimal.Decimal `json:"exposure"`
	ProvisionRate decimal.Decimal `json:"provision_rate"`
	Provision     decimal.Decimal `json:"provision"`
}

type Concentration struct {
	TopN        int             `json:"top_n"`
	TopExposure decimal.Decimal `json:"top_exposure"`
	Percent     decimal.Decimal `json:"percent"`
}

type CreditRiskReport struct {
	ReportHeader
	AsOf           time.Time       `json:"as_of"`
	LoanCount      int             `json:"loan_count"`
	TotalExposure  decimal.Decimal `json:"total_exposure"`
	ByRiskRating   []AmountShare   `json:"by_risk_rating"`
	ByLoanType     []AmountShare   `json:"by_loan_type"`
	Stages         []StageLine     `json:"stages"`
	TotalProvision decimal.Decimal `json:"total_provision"`
	NPLAmount      decimal.Decimal `json:"npl_amount"`
	CoverageRatio  decimal.Decimal `json:"coverage_ratio"`
	ExpectedLoss   decimal.Decimal `json:"expected_loss"`
	Concentration  Concentration   `json:"concentration"`
}

type MarketRiskReport struct {
	ReportHeader
	AsOf                     time.Time       `json:"as_of"`
	RateSensitiveAssets      decimal.Decimal `json:"rate_sensitive_assets"`
	RateSensitiveLiabilities decimal.Decimal `json:"rate_sensitive_liabilities"`
	RepricingGap             decimal.Decimal `json:"repricing_gap"`
	ShockBasisPoints         int             `json:"shock_basis_points"`
	NIIImpactUp              decimal.Decimal `json:"nii_impact_up"`
	NIIImpactDown            decimal.Decimal `json:"nii_impact_down"`
	InvestmentPortfolio      decimal.Decimal `json:"investment_portfolio"`
	DailyVolatility          decimal.Decimal `json:"daily_volatility"`
	HoldingPeriodDays        int             `json:"holding_period_days"`
	ValueAtRisk              decimal.Decimal `json:"value_at_risk"`
	VaRLimit                 decimal.Decimal `json:"var_limit"`
	WithinLimit              bool            `json:"within_limit"`
}

type KeyRiskIndicator struct {
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Threshold decimal.Decimal `json:"threshold"`
	Breached  bool            `json:"breached"`
}

type OperationalRiskReport struct {
	ReportHeader
	TotalTransactions     int                `json:"total_transactions"`
	FailedCount           int                `json:"failed_count"`
	ReversedCount         int                `json:"reversed_count"`
	FailureRate           decimal.Decimal    `json:"failure_rate"`
	ReversalRate          decimal.Decimal    `json:"reversal_rate"`
	LossEventCount        int                `json:"loss_event_count"`
	LossEventAmount       decimal.Decimal    `json:"loss_event_amount"`
	FailuresByChannel     []CountShare       `json:"failures_by_channel"`
	GrossIncome           decimal.Decimal    `json:"gross_income"`
	AnnualisedGrossIncome decimal.Decimal    `json:"annualised_gross_income"`
	CapitalCharge         decimal.Decimal    `json:"capital_charge"`
	Indicators            []KeyRiskIndicator `json:"indicators"`
}

// NPLMovement satisfies Closing == Opening + NetMovement and
// NetMovement == NewNPL - Recovered - WrittenOff exactly.
type NPLMovement struct {
	Opening     decimal.Decimal `json:"opening"`
	NewNPL      decimal.Decimal `json:"new_npl"`
	Recovered   decimal.Decimal `json:"recovered"`
	WrittenOff  decimal.Decimal `json:"written_off"`
	NetMovement decimal.Decimal `json:"net_movement"`
	Closing     decimal.Decimal `json:"closing"`
}

type NPLAnalysisReport struct {
	ReportHeader
	NPLCount         int             `json:"npl_count"`
	NPLAmount        decimal.Decimal `json:"npl_amount"`
	TotalLoans       int             `json:"total_loans"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	RatioByCount     decimal.Decimal `json:"ratio_by_count"`
	RatioByAmount    decimal.Decimal `json:"ratio_by_amount"`
	Aging            []AmountShare   `json:"aging"`
	ByLoanType       []AmountShare   `json:"by_loan_type"`
	Movement         NPLMovement     `json:"movement"`
	Recoveries       []AmountShare   `json:"recoveries"`
	TotalRecovered   decimal.Decimal `json:"total_recovered"`
}

type LadderBucket struct {
	Bucket               string          `json:"bucket"`
	Assets               decimal.Decimal `json:"assets"`
	Liabilities          decimal.Decimal `json:"liabilities"`
	Gap                  decimal.Decimal `json:"gap"`
	CumulativeGap        decimal.Decimal `json:"cumulative_gap"`
	CumulativeGapPercent decimal.Decimal `json:"cumulative_gap_percent"`
}

type LiquidityRiskReport struct {
	ReportHeader
	AsOf                time.Time       `json:"as_of"`
	Buckets             []LadderBucket  `json:"buckets"`
	TotalAssets         decimal.Decimal `json:"total_assets"`
	TotalLiabilities    decimal.Decimal `json:"total_liabilities"`
	FirstNegativeBucket string          `json:"first_negative_bucket,omitempty"`
}

// Delinquency buckets used by vintage curves and roll rates.
const (
	DelinquencyCurrent = "current"
	Delinquency1To30   = "1-30"
	Delinquency31To60  = "31-60"
	Delinquency61To90  = "61-90"
	Delinquency90Plus  = "90+"
	DelinquencyClosed  = "closed"
)

var DelinquencyBuckets = []string{DelinquencyCurrent, Delinquency1To30, Delinquency31To60, Delinquency61To90, Delinquency90Plus}

type VintagePoint struct {
	MonthsOnBook         int             `json:"months_on_book"`
	Observations         int             `json:"observations"`
	Distribution         []CountShare    `json:"distribution"`
	Cumulative90Plus     int             `json:"cumulative_90_plus"`
	Cumulative90PlusRate decimal.Decimal `json:"cumulative_90_plus_rate"`
}

type VintageCohort struct {
	Cohort    string          `json:"cohort"`
	LoanCount int             `json:"loan_count"`
	Disbursed decimal.Decimal `json:"disbursed"`
	Curve     []VintagePoint  `json:"curve"`
}

type FlowRate struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	Observations int             `json:"observations"`
	Rate         decimal.Decimal `json:"rate"`
}

// RollRateRow holds the transition shares out of one bucket. Populated rows sum to 100.
type RollRateRow struct {
	From         string       `json:"from"`
	Observations int          `json:"observations"`
	To           []CountShare `json:"to"`
}

type VintageAnalysisReport struct {
	ReportHeader
	Cohorts   []VintageCohort `json:"cohorts"`
	FlowRates []FlowRate      `json:"flow_rates"`
	RollRates []RollRateRow   `json:"roll_rates"`
}
