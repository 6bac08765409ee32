package services

import (
	"math"
	"sort"
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	creditStages = []string{models.StageStandard, models.StageWatchlist, models.StageSubstandard, models.StageDoubtful, models.StageLoss}
	riskRatings  = []string{models.RiskRatingLow, models.RiskRatingMedium, models.RiskRatingHigh, models.RiskRatingUnrated}
)

// creditStage classifies a loan by days past due. Written-off loans are always loss.
func creditStage(l models.Loan) string {
	if l.Status == models.LoanStatusWrittenOff {
		return models.StageLoss
	}
	switch dpd := l.DaysPastDue; {
	case dpd <= 30:
		return models.StageStandard
	case dpd <= 90:
		return models.StageWatchlist
	case dpd <= 180:
		return models.StageSubstandard
	case dpd <= 365:
		return models.StageDoubtful
	default:
		return models.StageLoss
	}
}

func stageRate(stage string, rates config.StageProvisionRates) decimal.Decimal {
	switch stage {
	case models.StageWatchlist:
		return rates.Watchlist
	case models.StageSubstandard:
		return rates.Substandard
	case models.StageDoubtful:
		return rates.Doubtful
	case models.StageLoss:
		return rates.Loss
	default:
		return rates.Standard
	}
}

func isNPLStage(stage string) bool {
	return stage == models.StageSubstandard || stage == models.StageDoubtful || stage == models.StageLoss
}

// creditExposure selects loans carrying credit risk at asOf.
func creditExposure(asOf time.Time) func(models.Loan) bool {
	return func(l models.Loan) bool {
		return (l.IsOnBook() || l.Status == models.LoanStatusWrittenOff) && !l.DisbursedAt.After(asOf)
	}
}

func buildCreditRisk(header models.ReportHeader, asOf time.Time, loans []models.Loan, customers []models.Customer, policy config.RiskPolicy) *models.CreditRiskReport {
	exposed := aggregation.Filter(loans, creditExposure(asOf))

	ratings := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		ratings[c.ID] = c.Rating()
	}
	ratingOf := func(l models.Loan) string {
		if rating, ok := ratings[l.CustomerID]; ok {
			return rating
		}
		return models.RiskRatingUnrated
	}

	byRating := aggregation.GroupBy(exposed, ratingOf)
	ratingCounts := make(map[string]int)
	ratingAmounts := make(map[string]decimal.Decimal)
	for _, rating := range riskRatings {
		rows := byRating.Get(rating)
		ratingCounts[rating] = len(rows)
		ratingAmounts[rating] = aggregation.RoundCurrency(aggregation.SumBy(rows, nil, outstanding))
	}

	byType := aggregation.GroupBy(exposed, func(l models.Loan) string { return l.LoanType })
	typeCounts := make(map[string]int)
	typeAmounts := make(map[string]decimal.Decimal)
	for _, loanType := range byType.Keys() {
		rows := byType.Get(loanType)
		typeCounts[loanType] = len(rows)
		typeAmounts[loanType] = aggregation.RoundCurrency(aggregation.SumBy(rows, nil, outstanding))
	}

	byStage := aggregation.GroupBy(exposed, creditStage)
	stages := make([]models.StageLine, 0, len(creditStages))
	totalProvision := decimal.Zero
	nplAmount := decimal.Zero
	for _, stage := range creditStages {
		rows := byStage.Get(stage)
		exposure := aggregation.RoundCurrency(aggregation.SumBy(rows, nil, outstanding))
		rate := stageRate(stage, policy.StageProvisionRates)
		provision := aggregation.RoundCurrency(exposure.Mul(rate))
		stages = append(stages, models.StageLine{
			Stage:         stage,
			Count:         len(rows),
			Exposure:      exposure,
			ProvisionRate: rate,
			Provision:     provision,
		})
		totalProvision = totalProvision.Add(provision)
		if isNPLStage(stage) {
			nplAmount = nplAmount.Add(exposure)
		}
	}

	expectedLoss := aggregation.RoundCurrency(aggregation.SumBy(exposed, nil, func(l models.Loan) decimal.Decimal {
		return l.OutstandingBalance.Mul(policy.ProbabilityOfDefault[ratingOf(l)]).Mul(policy.LossGivenDefault)
	}))

	totalExposure := aggregation.RoundCurrency(aggregation.SumBy(exposed, nil, outstanding))

	return &models.CreditRiskReport{
		ReportHeader:   header,
		AsOf:           asOf,
		LoanCount:      len(exposed),
		TotalExposure:  totalExposure,
		ByRiskRating:   amountShares(riskRatings, ratingCounts, ratingAmounts, true),
		ByLoanType:     amountShares(orderedLabels(models.LoanTypes, typeCounts), typeCounts, typeAmounts, true),
		Stages:         stages,
		TotalProvision: totalProvision,
		NPLAmount:      nplAmount,
		CoverageRatio:  aggregation.Percent(totalProvision, nplAmount),
		ExpectedLoss:   expectedLoss,
		Concentration:  borrowerConcentration(exposed, totalExposure, policy.ConcentrationTopN),
	}
}

// borrowerConcentration is the share of exposure held by the largest borrowers.
func borrowerConcentration(loans []models.Loan, total decimal.Decimal, topN int) models.Concentration {
	byBorrower := aggregation.GroupBy(loans, func(l models.Loan) uuid.UUID { return l.CustomerID })
	exposures := make([]decimal.Decimal, 0, byBorrower.Len())
	for _, id := range byBorrower.Keys() {
		exposures = append(exposures, aggregation.SumBy(byBorrower.Get(id), nil, outstanding))
	}
	sort.Slice(exposures, func(i, j int) bool { return exposures[i].GreaterThan(exposures[j]) })

	if topN > len(exposures) {
		topN = len(exposures)
	}
	if topN < 0 {
		topN = 0
	}
	top := aggregation.RoundCurrency(aggregation.Sum(exposures[:topN]...))
	return models.Concentration{
		TopN:        topN,
		TopExposure: top,
		Percent:     aggregation.Percent(top, total),
	}
}

// valueAtRisk is the parametric VaR of the investment book over the holding period.
func valueAtRisk(investments decimal.Decimal, policy config.RiskPolicy) decimal.Decimal {
	days := policy.HoldingPeriodDays
	if days < 1 {
		days = 1
	}
	scale := decimal.NewFromFloat(math.Sqrt(float64(days)))
	return aggregation.RoundCurrency(investments.Mul(policy.DailyVolatility).Mul(policy.ConfidenceZ).Mul(scale))
}

func buildMarketRisk(header models.ReportHeader, asOf time.Time, sheet *models.BalanceSheet, policy *config.Policy) *models.MarketRiskReport {
	risk := policy.Risk

	assets := sheet.Assets.Loans
	liabilities := sheet.Liabilities.Deposits.Add(sheet.Liabilities.Borrowings)
	gap := assets.Sub(liabilities)

	shock := decimal.NewFromInt(int64(risk.RateShockBasisPoints)).Div(decimal.NewFromInt(10000))
	impact := aggregation.RoundCurrency(gap.Mul(shock))

	capital := capitalStack(sheet.Assets.Total, policy.Regulatory).TotalCapital
	limit := aggregation.RoundCurrency(capital.Mul(risk.VaRLimitRate))
	tradingVaR := valueAtRisk(sheet.Assets.Investments, risk)

	return &models.MarketRiskReport{
		ReportHeader:             header,
		AsOf:                     asOf,
		RateSensitiveAssets:      assets,
		RateSensitiveLiabilities: liabilities,
		RepricingGap:             gap,
		ShockBasisPoints:         risk.RateShockBasisPoints,
		NIIImpactUp:              impact,
		NIIImpactDown:            impact.Neg(),
		InvestmentPortfolio:      sheet.Assets.Investments,
		DailyVolatility:          risk.DailyVolatility,
		HoldingPeriodDays:        risk.HoldingPeriodDays,
		ValueAtRisk:              tradingVaR,
		VaRLimit:                 limit,
		WithinLimit:              tradingVaR.LessThanOrEqual(limit),
	}
}
