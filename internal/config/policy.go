package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var ErrInvalidPolicy = errors.New("invalid report policy")

// LadderBuckets is the number of maturity ladder buckets every liquidity profile must cover.
const LadderBuckets = 7

// Policy is the table of business constants the report calculators apply.
// Every value has a default (DefaultPolicy) and can be overridden from a policy file.
type Policy struct {
	Financial  FinancialPolicy  `mapstructure:"financial"`
	Regulatory RegulatoryPolicy `mapstructure:"regulatory"`
	Risk       RiskPolicy       `mapstructure:"risk"`
	Customer   CustomerPolicy   `mapstructure:"customer"`
}

type FinancialPolicy struct {
	TransactionFeeRate    decimal.Decimal            `mapstructure:"transaction_fee_rate"`
	AccountFees           map[string]decimal.Decimal `mapstructure:"account_fees"`
	OtherIncomeRate       decimal.Decimal            `mapstructure:"other_income_rate"`
	OperatingExpenseRatio decimal.Decimal            `mapstructure:"operating_expense_ratio"`
	PersonnelExpenseRatio decimal.Decimal            `mapstructure:"personnel_expense_ratio"`
	OtherExpenseRatio     decimal.Decimal            `mapstructure:"other_expense_ratio"`
	ProvisionRate         decimal.Decimal            `mapstructure:"provision_rate"`
	AverageMonthlySalary  decimal.Decimal            `mapstructure:"average_monthly_salary"`

	CashShareOfChecking      decimal.Decimal `mapstructure:"cash_share_of_checking"`
	InvestmentShareOfSavings decimal.Decimal `mapstructure:"investment_share_of_savings"`
	InvestmentThreshold      decimal.Decimal `mapstructure:"investment_threshold"`
	FixedAssetRate           decimal.Decimal `mapstructure:"fixed_asset_rate"`
	OtherAssetRate           decimal.Decimal `mapstructure:"other_asset_rate"`
	BorrowingsRate           decimal.Decimal `mapstructure:"borrowings_rate"`
	OtherLiabilitiesRate     decimal.Decimal `mapstructure:"other_liabilities_rate"`

	DepositRate decimal.Decimal `mapstructure:"deposit_rate"`
	TaxRate     decimal.Decimal `mapstructure:"tax_rate"`

	BudgetMultipliers BudgetMultipliers `mapstructure:"budget_multipliers"`

	InvestingKeywords   []string `mapstructure:"investing_keywords"`
	FinancingKeywords   []string `mapstructure:"financing_keywords"`
	CashFlowTrendMonths int      `mapstructure:"cash_flow_trend_months"`
}

type BudgetMultipliers struct {
	InterestIncome   decimal.Decimal `mapstructure:"interest_income"`
	TransactionFees  decimal.Decimal `mapstructure:"transaction_fees"`
	AccountFees      decimal.Decimal `mapstructure:"account_fees"`
	OtherIncome      decimal.Decimal `mapstructure:"other_income"`
	OperatingExpense decimal.Decimal `mapstructure:"operating_expense"`
	PersonnelExpense decimal.Decimal `mapstructure:"personnel_expense"`
	Provisions       decimal.Decimal `mapstructure:"provisions"`
	OtherExpense     decimal.Decimal `mapstructure:"other_expense"`
}

type RegulatoryPolicy struct {
	MinCET1Ratio         decimal.Decimal `mapstructure:"min_cet1_ratio"`
	MinTier1Ratio        decimal.Decimal `mapstructure:"min_tier1_ratio"`
	MinTotalCapitalRatio decimal.Decimal `mapstructure:"min_total_capital_ratio"`
	MinLeverageRatio     decimal.Decimal `mapstructure:"min_leverage_ratio"`
	MinLCR               decimal.Decimal `mapstructure:"min_lcr"`
	MinNSFR              decimal.Decimal `mapstructure:"min_nsfr"`
	ConservationBuffer   decimal.Decimal `mapstructure:"conservation_buffer"`

	CET1Share  decimal.Decimal `mapstructure:"cet1_share"`
	AT1Share   decimal.Decimal `mapstructure:"at1_share"`
	Tier2Share decimal.Decimal `mapstructure:"tier2_share"`

	InvestmentSplit    InvestmentSplit `mapstructure:"investment_split"`
	RiskWeights        RiskWeights     `mapstructure:"risk_weights"`
	CorporateLoanTypes []string        `mapstructure:"corporate_loan_types"`

	CorporateBondHQLAFactor decimal.Decimal            `mapstructure:"corporate_bond_hqla_factor"`
	OtherSecurityHQLAFactor decimal.Decimal            `mapstructure:"other_security_hqla_factor"`
	SimpleOutflowRate       decimal.Decimal            `mapstructure:"simple_outflow_rate"`
	DepositOutflowRates     map[string]decimal.Decimal `mapstructure:"deposit_outflow_rates"`
	BorrowingOutflowRate    decimal.Decimal            `mapstructure:"borrowing_outflow_rate"`
	LoanInflowRate          decimal.Decimal            `mapstructure:"loan_inflow_rate"`
	InflowCapRate           decimal.Decimal            `mapstructure:"inflow_cap_rate"`
	AvailableStableFunding  StableFundingFactors       `mapstructure:"available_stable_funding"`
	RequiredStableFunding   RequiredFundingFactors     `mapstructure:"required_stable_funding"`
	MarketRiskMultiplier    decimal.Decimal            `mapstructure:"market_risk_multiplier"`
	OperationalRiskAlpha    decimal.Decimal            `mapstructure:"operational_risk_alpha"`
	MaxLoanToDepositRatio   decimal.Decimal            `mapstructure:"max_loan_to_deposit_ratio"`
	MinLiquidityRatio       decimal.Decimal            `mapstructure:"min_liquidity_ratio"`
	LargeTransactionAmount  decimal.Decimal            `mapstructure:"large_transaction_amount"`
	StructuringLowerBound   decimal.Decimal            `mapstructure:"structuring_lower_bound"`
	StructuringMinCount     int                        `mapstructure:"structuring_min_count"`
	MinKYCCompletionRate    decimal.Decimal            `mapstructure:"min_kyc_completion_rate"`
}

// InvestmentSplit divides the investment book into Basel asset classes. Shares sum to 1.
type InvestmentSplit struct {
	GovernmentBonds decimal.Decimal `mapstructure:"government_bonds"`
	CorporateBonds  decimal.Decimal `mapstructure:"corporate_bonds"`
	OtherSecurities decimal.Decimal `mapstructure:"other_securities"`
}

type RiskWeights struct {
	Cash            decimal.Decimal `mapstructure:"cash"`
	GovernmentBonds decimal.Decimal `mapstructure:"government_bonds"`
	CorporateBonds  decimal.Decimal `mapstructure:"corporate_bonds"`
	OtherSecurities decimal.Decimal `mapstructure:"other_securities"`
	CorporateLoans  decimal.Decimal `mapstructure:"corporate_loans"`
	RetailLoans     decimal.Decimal `mapstructure:"retail_loans"`
	FixedAndOther   decimal.Decimal `mapstructure:"fixed_and_other"`
}

type StableFundingFactors struct {
	Capital          decimal.Decimal `mapstructure:"capital"`
	RetailDeposits   decimal.Decimal `mapstructure:"retail_deposits"`
	TermDeposits     decimal.Decimal `mapstructure:"term_deposits"`
	BusinessDeposits decimal.Decimal `mapstructure:"business_deposits"`
	Borrowings       decimal.Decimal `mapstructure:"borrowings"`
}

type RequiredFundingFactors struct {
	Cash            decimal.Decimal `mapstructure:"cash"`
	GovernmentBonds decimal.Decimal `mapstructure:"government_bonds"`
	CorporateBonds  decimal.Decimal `mapstructure:"corporate_bonds"`
	OtherSecurities decimal.Decimal `mapstructure:"other_securities"`
	RetailLoans     decimal.Decimal `mapstructure:"retail_loans"`
	CorporateLoans  decimal.Decimal `mapstructure:"corporate_loans"`
	FixedAndOther   decimal.Decimal `mapstructure:"fixed_and_other"`
}

type RiskPolicy struct {
	StageProvisionRates  StageProvisionRates        `mapstructure:"stage_provision_rates"`
	ProbabilityOfDefault map[string]decimal.Decimal `mapstructure:"probability_of_default"`
	LossGivenDefault     decimal.Decimal            `mapstructure:"loss_given_default"`
	ConcentrationTopN    int                        `mapstructure:"concentration_top_n"`

	RateShockBasisPoints int             `mapstructure:"rate_shock_basis_points"`
	DailyVolatility      decimal.Decimal `mapstructure:"daily_volatility"`
	ConfidenceZ          decimal.Decimal `mapstructure:"confidence_z"`
	HoldingPeriodDays    int             `mapstructure:"holding_period_days"`
	VaRLimitRate         decimal.Decimal `mapstructure:"var_limit_rate"`

	MaxFailureRate  decimal.Decimal `mapstructure:"max_failure_rate"`
	MaxReversalRate decimal.Decimal `mapstructure:"max_reversal_rate"`

	NPLDaysPastDue         int `mapstructure:"npl_days_past_due"`
	VintageMaxMonthsOnBook int `mapstructure:"vintage_max_months_on_book"`

	// MaturityProfiles maps a balance sheet class to its share in each ladder bucket.
	MaturityProfiles map[string][]decimal.Decimal `mapstructure:"maturity_profiles"`
}

type StageProvisionRates struct {
	Standard    decimal.Decimal `mapstructure:"standard"`
	Watchlist   decimal.Decimal `mapstructure:"watchlist"`
	Substandard decimal.Decimal `mapstructure:"substandard"`
	Doubtful    decimal.Decimal `mapstructure:"doubtful"`
	Loss        decimal.Decimal `mapstructure:"loss"`
}

type CustomerPolicy struct {
	TrendMonths       int   `mapstructure:"trend_months"`
	SatisfiedScore    int   `mapstructure:"satisfied_score"`
	PromoterScore     int   `mapstructure:"promoter_score"`
	DetractorScore    int   `mapstructure:"detractor_score"`
	LowActivityMax    int   `mapstructure:"low_activity_max"`
	MediumActivityMax int   `mapstructure:"medium_activity_max"`
	AgeBandStarts     []int `mapstructure:"age_band_starts"`
}

// Maturity profile keys.
const (
	ProfileCash           = "cash"
	ProfileInvestments    = "investments"
	ProfileLoans          = "loans"
	ProfileDemandDeposits = "demand_deposits"
	ProfileSavings        = "savings"
	ProfileTermDeposits   = "term_deposits"
	ProfileBorrowings     = "borrowings"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decs(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

func DefaultPolicy() *Policy {
	return &Policy{
		Financial: FinancialPolicy{
			TransactionFeeRate: dec("0.015"),
			AccountFees: map[string]decimal.Decimal{
				"checking": dec("15"),
				"savings":  dec("5"),
				"term":     dec("0"),
				"business": dec("50"),
			},
			OtherIncomeRate:          dec("0.05"),
			OperatingExpenseRatio:    dec("0.25"),
			PersonnelExpenseRatio:    dec("0.35"),
			OtherExpenseRatio:        dec("0.05"),
			ProvisionRate:            dec("0.02"),
			AverageMonthlySalary:     dec("12000"),
			CashShareOfChecking:      dec("0.20"),
			InvestmentShareOfSavings: dec("0.70"),
			InvestmentThreshold:      dec("50000"),
			FixedAssetRate:           dec("0.05"),
			OtherAssetRate:           dec("0.03"),
			BorrowingsRate:           dec("0.20"),
			OtherLiabilitiesRate:     dec("0.05"),
			DepositRate:              dec("0.03"),
			TaxRate:                  dec("0.20"),
			BudgetMultipliers: BudgetMultipliers{
				InterestIncome:   dec("0.95"),
				TransactionFees:  dec("0.90"),
				AccountFees:      dec("1.00"),
				OtherIncome:      dec("1.02"),
				OperatingExpense: dec("1.05"),
				PersonnelExpense: dec("1.00"),
				Provisions:       dec("0.95"),
				OtherExpense:     dec("1.05"),
			},
			InvestingKeywords:   []string{"investment", "securities_purchase", "securities_sale", "asset_purchase", "asset_sale", "dividend_received"},
			FinancingKeywords:   []string{"loan_disbursement", "loan_repayment", "borrowing", "debt_repayment", "capital_injection", "dividend_paid"},
			CashFlowTrendMonths: 6,
		},
		Regulatory: RegulatoryPolicy{
			MinCET1Ratio:         dec("4.5"),
			MinTier1Ratio:        dec("6.0"),
			MinTotalCapitalRatio: dec("8.0"),
			MinLeverageRatio:     dec("3.0"),
			MinLCR:               dec("100"),
			MinNSFR:              dec("100"),
			ConservationBuffer:   dec("2.5"),
			CET1Share:            dec("0.09"),
			AT1Share:             dec("0.01"),
			Tier2Share:           dec("0.02"),
			InvestmentSplit: InvestmentSplit{
				GovernmentBonds: dec("0.50"),
				CorporateBonds:  dec("0.30"),
				OtherSecurities: dec("0.20"),
			},
			RiskWeights: RiskWeights{
				Cash:            dec("0"),
				GovernmentBonds: dec("0"),
				CorporateBonds:  dec("1.0"),
				OtherSecurities: dec("1.0"),
				CorporateLoans:  dec("1.0"),
				RetailLoans:     dec("0.75"),
				FixedAndOther:   dec("1.0"),
			},
			CorporateLoanTypes:      []string{"business", "corporate"},
			CorporateBondHQLAFactor: dec("0.85"),
			OtherSecurityHQLAFactor: dec("0.50"),
			SimpleOutflowRate:       dec("0.05"),
			DepositOutflowRates: map[string]decimal.Decimal{
				"checking": dec("0.10"),
				"savings":  dec("0.05"),
				"term":     dec("0.03"),
				"business": dec("0.25"),
			},
			BorrowingOutflowRate: dec("1.0"),
			LoanInflowRate:       dec("0.50"),
			InflowCapRate:        dec("0.75"),
			AvailableStableFunding: StableFundingFactors{
				Capital:          dec("1.0"),
				RetailDeposits:   dec("0.90"),
				TermDeposits:     dec("0.95"),
				BusinessDeposits: dec("0.50"),
				Borrowings:       dec("0.50"),
			},
			RequiredStableFunding: RequiredFundingFactors{
				Cash:            dec("0"),
				GovernmentBonds: dec("0.05"),
				CorporateBonds:  dec("0.50"),
				OtherSecurities: dec("0.85"),
				RetailLoans:     dec("0.65"),
				CorporateLoans:  dec("0.85"),
				FixedAndOther:   dec("1.0"),
			},
			MarketRiskMultiplier:   dec("12.5"),
			OperationalRiskAlpha:   dec("0.15"),
			MaxLoanToDepositRatio:  dec("90"),
			MinLiquidityRatio:      dec("20"),
			LargeTransactionAmount: dec("60000"),
			StructuringLowerBound:  dec("0.90"),
			StructuringMinCount:    3,
			MinKYCCompletionRate:   dec("95"),
		},
		Risk: RiskPolicy{
			StageProvisionRates: StageProvisionRates{
				Standard:    dec("0.01"),
				Watchlist:   dec("0.10"),
				Substandard: dec("0.25"),
				Doubtful:    dec("0.50"),
				Loss:        dec("1.00"),
			},
			ProbabilityOfDefault: map[string]decimal.Decimal{
				"LOW":     dec("0.01"),
				"MEDIUM":  dec("0.03"),
				"HIGH":    dec("0.10"),
				"UNRATED": dec("0.05"),
			},
			LossGivenDefault:       dec("0.45"),
			ConcentrationTopN:      10,
			RateShockBasisPoints:   200,
			DailyVolatility:        dec("0.012"),
			ConfidenceZ:            dec("2.33"),
			HoldingPeriodDays:      10,
			VaRLimitRate:           dec("0.02"),
			MaxFailureRate:         dec("2"),
			MaxReversalRate:        dec("1"),
			NPLDaysPastDue:         90,
			VintageMaxMonthsOnBook: 12,
			MaturityProfiles: map[string][]decimal.Decimal{
				ProfileCash:           decs("1", "0", "0", "0", "0", "0", "0"),
				ProfileInvestments:    decs("0.10", "0.10", "0.10", "0.20", "0.20", "0.15", "0.15"),
				ProfileLoans:          decs("0", "0.02", "0.05", "0.08", "0.10", "0.15", "0.60"),
				ProfileDemandDeposits: decs("0.30", "0.10", "0.10", "0.10", "0.10", "0.10", "0.20"),
				ProfileSavings:        decs("0.05", "0.05", "0.10", "0.15", "0.15", "0.20", "0.30"),
				ProfileTermDeposits:   decs("0", "0.05", "0.15", "0.30", "0.25", "0.15", "0.10"),
				ProfileBorrowings:     decs("0", "0", "0.10", "0.20", "0.20", "0.20", "0.30"),
			},
		},
		Customer: CustomerPolicy{
			TrendMonths:       6,
			SatisfiedScore:    4,
			PromoterScore:     9,
			DetractorScore:    6,
			LowActivityMax:    2,
			MediumActivityMax: 9,
			AgeBandStarts:     []int{18, 25, 35, 45, 55, 65},
		},
	}
}

// LoadPolicy returns DefaultPolicy overridden by the values in the given file.
// An empty path returns the defaults.
func LoadPolicy(path string) (*Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	if err := v.Unmarshal(policy, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalDecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	policy.Risk.ProbabilityOfDefault = upperKeys(policy.Risk.ProbabilityOfDefault)

	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return policy, nil
}

// upperKeys restores the rating keys viper lowercases when it reads a file.
// Entries from the file win over the uppercase defaults they shadow.
func upperKeys(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		if k == strings.ToUpper(k) {
			out[k] = v
		}
	}
	for k, v := range m {
		if k != strings.ToUpper(k) {
			out[strings.ToUpper(k)] = v
		}
	}
	return out
}

func decimalDecodeHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(decimal.Decimal{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != target {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case uint64:
			return decimal.NewFromUint64(v), nil
		default:
			return data, nil
		}
	}
}

// Validate rejects tables the calculators cannot apply.
func (p *Policy) Validate() error {
	rates := map[string]decimal.Decimal{
		"financial.transaction_fee_rate":   p.Financial.TransactionFeeRate,
		"financial.provision_rate":         p.Financial.ProvisionRate,
		"financial.tax_rate":               p.Financial.TaxRate,
		"regulatory.cet1_share":            p.Regulatory.CET1Share,
		"regulatory.loan_inflow_rate":      p.Regulatory.LoanInflowRate,
		"risk.loss_given_default":          p.Risk.LossGivenDefault,
		"risk.daily_volatility":            p.Risk.DailyVolatility,
		"regulatory.simple_outflow_rate":   p.Regulatory.SimpleOutflowRate,
		"regulatory.structuring_lower_bnd": p.Regulatory.StructuringLowerBound,
	}
	for rating, pd := range p.Risk.ProbabilityOfDefault {
		rates["risk.probability_of_default."+rating] = pd
	}
	for name, rate := range rates {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: %s must be within [0, 1], got %s", ErrInvalidPolicy, name, rate)
		}
	}

	for class, weights := range p.Risk.MaturityProfiles {
		if len(weights) != LadderBuckets {
			return fmt.Errorf("%w: maturity profile %q needs %d buckets, got %d", ErrInvalidPolicy, class, LadderBuckets, len(weights))
		}
		total := decimal.Sum(decimal.Zero, weights...)
		if !total.Equal(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: maturity profile %q must sum to 1, got %s", ErrInvalidPolicy, class, total)
		}
	}

	if p.Financial.CashFlowTrendMonths <= 0 || p.Customer.TrendMonths <= 0 {
		return fmt.Errorf("%w: trend windows must be positive", ErrInvalidPolicy)
	}
	if p.Risk.VintageMaxMonthsOnBook < 0 || p.Risk.HoldingPeriodDays <= 0 {
		return fmt.Errorf("%w: vintage horizon and holding period must be positive", ErrInvalidPolicy)
	}
	if p.Customer.LowActivityMax >= p.Customer.MediumActivityMax {
		return fmt.Errorf("%w: low_activity_max must be below medium_activity_max", ErrInvalidPolicy)
	}
	return nil
}

// IsCorporateLoanType reports whether loans of this type carry the corporate risk weight.
func (p *RegulatoryPolicy) IsCorporateLoanType(loanType string) bool {
	for _, t := range p.CorporateLoanTypes {
		if t == loanType {
			return true
		}
	}
	return false
}
