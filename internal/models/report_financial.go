package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PersonnelBasisHeadcount    = "headcount"
	PersonnelBasisRevenueRatio = "revenue_ratio"
)

type RevenueLines struct {
	InterestIncome  decimal.Decimal `json:"interest_income"`
	TransactionFees decimal.Decimal `json:"transaction_fees"`
	AccountFees     decimal.Decimal `json:"account_fees"`
	OtherIncome     decimal.Decimal `json:"other_income"`
	Total           decimal.Decimal `json:"total"`
}

type ExpenseLines struct {
	Operating  decimal.Decimal `json:"operating"`
	Personnel  decimal.Decimal `json:"personnel"`
	Provisions decimal.Decimal `json:"provisions"`
	Other      decimal.Decimal `json:"other"`
	Total      decimal.Decimal `json:"total"`
}

type IncomeStatementMetrics struct {
	OperatingMargin decimal.Decimal `json:"operating_margin"`
	NetMargin       decimal.Decimal `json:"net_margin"`
	ExpenseRatio    decimal.Decimal `json:"expense_ratio"`
}

type IncomeStatement struct {
	ReportHeader
	Revenue            RevenueLines           `json:"revenue"`
	Expenses           ExpenseLines           `json:"expenses"`
	NetIncome          decimal.Decimal        `json:"net_income"`
	PersonnelBasis     string                 `json:"personnel_basis"`
	Headcount          int64                  `json:"headcount"`
	TransactionCount   int                    `json:"transaction_count"`
	ActiveAccountCount int                    `json:"active_account_count"`
	ActiveLoanCount    int                    `json:"active_loan_count"`
	Metrics            IncomeStatementMetrics `json:"metrics"`
}

type AssetLines struct {
	Cash        decimal.Decimal `json:"cash"`
	Loans       decimal.Decimal `json:"loans"`
	Investments decimal.Decimal `json:"investments"`
	FixedAssets decimal.Decimal `json:"fixed_assets"`
	OtherAssets decimal.Decimal `json:"other_assets"`
	Total       decimal.Decimal `json:"total"`
}

type LiabilityLines struct {
	Deposits         decimal.Decimal `json:"deposits"`
	Borrowings       decimal.Decimal `json:"borrowings"`
	OtherLiabilities decimal.Decimal `json:"other_liabilities"`
	Total            decimal.Decimal `json:"total"`
}

type BalanceSheetMetrics struct {
	DebtToEquity decimal.Decimal `json:"debt_to_equity"`
	CurrentRatio decimal.Decimal `json:"current_ratio"`
	EquityRatio  decimal.Decimal `json:"equity_ratio"`
}

// BalanceSheet satisfies TotalAssets == TotalLiabilities + TotalEquity exactly.
type BalanceSheet struct {
	ReportHeader
	AsOf           time.Time           `json:"as_of"`
	Assets         AssetLines          `json:"assets"`
	Liabilities    LiabilityLines      `json:"liabilities"`
	TotalEquity    decimal.Decimal     `json:"total_equity"`
	DepositsByType []LineItem          `json:"deposits_by_type"`
	LoansByType    []LineItem          `json:"loans_by_type"`
	Metrics        BalanceSheetMetrics `json:"metrics"`
}

type CashFlowSection struct {
	Inflows          decimal.Decimal `json:"inflows"`
	Outflows         decimal.Decimal `json:"outflows"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

type CashReconciliation struct {
	SnapshotAvailable      bool            `json:"snapshot_available"`
	ReportedClosingBalance decimal.Decimal `json:"reported_closing_balance"`
	Difference             decimal.Decimal `json:"difference"`
	Reconciled             bool            `json:"reconciled"`
}

type CashFlowTrendPoint struct {
	Period   string          `json:"period"`
	Inflows  decimal.Decimal `json:"inflows"`
	Outflows decimal.Decimal `json:"outflows"`
	Net      decimal.Decimal `json:"net"`
}

type CashFlowStatement struct {
	ReportHeader
	Operating      CashFlowSection      `json:"operating"`
	Investing      CashFlowSection      `json:"investing"`
	Financing      CashFlowSection      `json:"financing"`
	NetCashFlow    decimal.Decimal      `json:"net_cash_flow"`
	OpeningBalance decimal.Decimal      `json:"opening_balance"`
	ClosingBalance decimal.Decimal      `json:"closing_balance"`
	Reconciliation CashReconciliation   `json:"reconciliation"`
	Trend          []CashFlowTrendPoint `json:"trend"`
}

type ProfitLossMetrics struct {
	GrossMargin     decimal.Decimal `json:"gross_margin"`
	OperatingMargin decimal.Decimal `json:"operating_margin"`
	NetMargin       decimal.Decimal `json:"net_margin"`
}

type ProfitAndLoss struct {
	ReportHeader
	Revenue          RevenueLines      `json:"revenue"`
	CostOfFunds      decimal.Decimal   `json:"cost_of_funds"`
	GrossProfit      decimal.Decimal   `json:"gross_profit"`
	OperatingExpense decimal.Decimal   `json:"operating_expense"`
	PersonnelExpense decimal.Decimal   `json:"personnel_expense"`
	OperatingProfit  decimal.Decimal   `json:"operating_profit"`
	Provisions       decimal.Decimal   `json:"provisions"`
	OtherExpense     decimal.Decimal   `json:"other_expense"`
	ProfitBeforeTax  decimal.Decimal   `json:"profit_before_tax"`
	Tax              decimal.Decimal   `json:"tax"`
	NetProfit        decimal.Decimal   `json:"net_profit"`
	Metrics          ProfitLossMetrics `json:"metrics"`
}

const (
	VarianceCategoryRevenue = "revenue"
	VarianceCategoryExpense = "expense"
)

type VarianceLine struct {
	Line            string          `json:"line"`
	Category        string          `json:"category"`
	Actual          decimal.Decimal `json:"actual"`
	Budget          decimal.Decimal `json:"budget"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variance_percent"`
	Favorable       bool            `json:"favorable"`
}

type BudgetVariance struct {
	ReportHeader
	Lines     []VarianceLine `json:"lines"`
	Revenue   VarianceLine   `json:"revenue"`
	Expenses  VarianceLine   `json:"expenses"`
	NetIncome VarianceLine   `json:"net_income"`
}
