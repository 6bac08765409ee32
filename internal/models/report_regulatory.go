package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CapitalComponents struct {
	CET1         decimal.Decimal `json:"cet1"`
	AT1          decimal.Decimal `json:"at1"`
	Tier1        decimal.Decimal `json:"tier1"`
	Tier2        decimal.Decimal `json:"tier2"`
	TotalCapital decimal.Decimal `json:"total_capital"`
}

// RiskExposure is one Basel asset class with its weighted amount.
type RiskExposure struct {
	AssetClass string          `json:"asset_class"`
	Exposure   decimal.Decimal `json:"exposure"`
	RiskWeight decimal.Decimal `json:"risk_weight"`
	RWA        decimal.Decimal `json:"rwa"`
}

type BaselIIIReport struct {
	ReportHeader
	AsOf                   time.Time         `json:"as_of"`
	Capital                CapitalComponents `json:"capital"`
	Exposures              []RiskExposure    `json:"exposures"`
	TotalAssets            decimal.Decimal   `json:"total_assets"`
	TotalRWA               decimal.Decimal   `json:"total_rwa"`
	HQLA                   decimal.Decimal   `json:"hqla"`
	NetCashOutflows        decimal.Decimal   `json:"net_cash_outflows"`
	AvailableStableFunding decimal.Decimal   `json:"available_stable_funding"`
	RequiredStableFunding  decimal.Decimal   `json:"required_stable_funding"`
	CET1Ratio              RatioCheck        `json:"cet1_ratio"`
	Tier1Ratio             RatioCheck        `json:"tier1_ratio"`
	TotalCapitalRatio      RatioCheck        `json:"total_capital_ratio"`
	LeverageRatio          RatioCheck        `json:"leverage_ratio"`
	LCR                    RatioCheck        `json:"lcr"`
	NSFR                   RatioCheck        `json:"nsfr"`
	Compliant              bool              `json:"compliant"`
}

// WeightedLine applies a factor (haircut, run-off or funding factor) to a balance.
type WeightedLine struct {
	Category string          `json:"category"`
	Balance  decimal.Decimal `json:"balance"`
	Factor   decimal.Decimal `json:"factor"`
	Weighted decimal.Decimal `json:"weighted"`
}

type LCRReport struct {
	ReportHeader
	AsOf            time.Time       `json:"as_of"`
	HQLA            []WeightedLine  `json:"hqla"`
	TotalHQLA       decimal.Decimal `json:"total_hqla"`
	Outflows        []WeightedLine  `json:"outflows"`
	TotalOutflows   decimal.Decimal `json:"total_outflows"`
	Inflows         []WeightedLine  `json:"inflows"`
	GrossInflows    decimal.Decimal `json:"gross_inflows"`
	InflowCap       decimal.Decimal `json:"inflow_cap"`
	CappedInflows   decimal.Decimal `json:"capped_inflows"`
	NetCashOutflows decimal.Decimal `json:"net_cash_outflows"`
	LCR             RatioCheck      `json:"lcr"`
}

type NSFRReport struct {
	ReportHeader
	AsOf                   time.Time       `json:"as_of"`
	AvailableStableFunding []WeightedLine  `json:"available_stable_funding"`
	TotalASF               decimal.Decimal `json:"total_asf"`
	RequiredStableFunding  []WeightedLine  `json:"required_stable_funding"`
	TotalRSF               decimal.Decimal `json:"total_rsf"`
	NSFR                   RatioCheck      `json:"nsfr"`
}

type CapitalAdequacyReport struct {
	ReportHeader
	AsOf               time.Time         `json:"as_of"`
	Capital            CapitalComponents `json:"capital"`
	CreditRWA          decimal.Decimal   `json:"credit_rwa"`
	MarketRWA          decimal.Decimal   `json:"market_rwa"`
	OperationalRWA     decimal.Decimal   `json:"operational_rwa"`
	TotalRWA           decimal.Decimal   `json:"total_rwa"`
	CET1Ratio          RatioCheck        `json:"cet1_ratio"`
	Tier1Ratio         RatioCheck        `json:"tier1_ratio"`
	CapitalAdequacy    RatioCheck        `json:"capital_adequacy_ratio"`
	ConservationBuffer decimal.Decimal   `json:"conservation_buffer"`
	CET1WithBuffer     RatioCheck        `json:"cet1_with_buffer"`
	CapitalSurplus     decimal.Decimal   `json:"capital_surplus"`
	Compliant          bool              `json:"compliant"`
}

type LoanPortfolioSummary struct {
	Count       int             `json:"count"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type NPLSummary struct {
	Count         int             `json:"count"`
	Amount        decimal.Decimal `json:"amount"`
	RatioByCount  decimal.Decimal `json:"ratio_by_count"`
	RatioByAmount decimal.Decimal `json:"ratio_by_amount"`
}

type TransactionActivity struct {
	Count       int             `json:"count"`
	Volume      decimal.Decimal `json:"volume"`
	LargeCount  int             `json:"large_count"`
	LargeVolume decimal.Decimal `json:"large_volume"`
	Threshold   decimal.Decimal `json:"threshold"`
}

type SAMAMonthlyReport struct {
	ReportHeader
	Deposits        []LineItem           `json:"deposits"`
	TotalDeposits   decimal.Decimal      `json:"total_deposits"`
	Loans           LoanPortfolioSummary `json:"loans"`
	NPL             NPLSummary           `json:"npl"`
	LoanToDeposit   RatioCeiling         `json:"loan_to_deposit"`
	LiquidityRatio  RatioCheck           `json:"liquidity_ratio"`
	CapitalAdequacy RatioCheck           `json:"capital_adequacy"`
	Transactions    TransactionActivity  `json:"transactions"`
	Compliant       bool                 `json:"compliant"`
}

type StructuringSuspect struct {
	CustomerID       uuid.UUID       `json:"customer_id"`
	TransactionCount int             `json:"transaction_count"`
	Amount           decimal.Decimal `json:"amount"`
}

type LargeTransactionSummary struct {
	Count     int             `json:"count"`
	Amount    decimal.Decimal `json:"amount"`
	Threshold decimal.Decimal `json:"threshold"`
}

type KYCSummary struct {
	Distribution   []CountShare `json:"distribution"`
	CompletionRate RatioCheck   `json:"completion_rate"`
}

type AMLReport struct {
	ReportHeader
	LargeTransactions   LargeTransactionSummary `json:"large_transactions"`
	StructuringSuspects []StructuringSuspect    `json:"structuring_suspects"`
	HighRiskCustomers   int                     `json:"high_risk_customers"`
	KYC                 KYCSummary              `json:"kyc"`
	TotalAlerts         int                     `json:"total_alerts"`
	Compliant           bool                    `json:"compliant"`
}
