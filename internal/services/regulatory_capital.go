package services

import (
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

// Basel asset classes.
const (
	assetCash            = "cash"
	assetGovernmentBonds = "government_bonds"
	assetCorporateBonds  = "corporate_bonds"
	assetOtherSecurities = "other_securities"
	assetCorporateLoans  = "corporate_loans"
	assetRetailLoans     = "retail_loans"
	assetFixedAndOther   = "fixed_and_other_assets"
)

// prudentialPosition is the balance sheet split into Basel asset classes with
// the simulated capital stack on top.
type prudentialPosition struct {
	sheet           *models.BalanceSheet
	governmentBonds decimal.Decimal
	corporateBonds  decimal.Decimal
	otherSecurities decimal.Decimal
	corporateLoans  decimal.Decimal
	retailLoans     decimal.Decimal
	exposures       []models.RiskExposure
	totalRWA        decimal.Decimal
	capital         models.CapitalComponents
}

func computePrudentialPosition(sheet *models.BalanceSheet, policy config.RegulatoryPolicy) prudentialPosition {
	investments := sheet.Assets.Investments
	government := aggregation.RoundCurrency(investments.Mul(policy.InvestmentSplit.GovernmentBonds))
	corporate := aggregation.RoundCurrency(investments.Mul(policy.InvestmentSplit.CorporateBonds))
	other := investments.Sub(government).Sub(corporate)

	corporateLoans := decimal.Zero
	for _, line := range sheet.LoansByType {
		if policy.IsCorporateLoanType(line.Label) {
			corporateLoans = corporateLoans.Add(line.Amount)
		}
	}
	retailLoans := sheet.Assets.Loans.Sub(corporateLoans)

	weights := policy.RiskWeights
	classes := []struct {
		name     string
		exposure decimal.Decimal
		weight   decimal.Decimal
	}{
		{assetCash, sheet.Assets.Cash, weights.Cash},
		{assetGovernmentBonds, government, weights.GovernmentBonds},
		{assetCorporateBonds, corporate, weights.CorporateBonds},
		{assetOtherSecurities, other, weights.OtherSecurities},
		{assetCorporateLoans, corporateLoans, weights.CorporateLoans},
		{assetRetailLoans, retailLoans, weights.RetailLoans},
		{assetFixedAndOther, sheet.Assets.FixedAssets.Add(sheet.Assets.OtherAssets), weights.FixedAndOther},
	}

	exposures := make([]models.RiskExposure, 0, len(classes))
	totalRWA := decimal.Zero
	for _, c := range classes {
		rwa := aggregation.RoundCurrency(c.exposure.Mul(c.weight))
		exposures = append(exposures, models.RiskExposure{
			AssetClass: c.name,
			Exposure:   c.exposure,
			RiskWeight: c.weight,
			RWA:        rwa,
		})
		totalRWA = totalRWA.Add(rwa)
	}

	return prudentialPosition{
		sheet:           sheet,
		governmentBonds: government,
		corporateBonds:  corporate,
		otherSecurities: other,
		corporateLoans:  corporateLoans,
		retailLoans:     retailLoans,
		exposures:       exposures,
		totalRWA:        totalRWA,
		capital:         capitalStack(sheet.Assets.Total, policy),
	}
}

// capitalStack simulates regulatory capital as fixed shares of total assets.
func capitalStack(totalAssets decimal.Decimal, policy config.RegulatoryPolicy) models.CapitalComponents {
	base := aggregation.MaxZero(totalAssets)
	cet1 := aggregation.RoundCurrency(base.Mul(policy.CET1Share))
	at1 := aggregation.RoundCurrency(base.Mul(policy.AT1Share))
	tier2 := aggregation.RoundCurrency(base.Mul(policy.Tier2Share))
	tier1 := cet1.Add(at1)
	return models.CapitalComponents{
		CET1:         cet1,
		AT1:          at1,
		Tier1:        tier1,
		Tier2:        tier2,
		TotalCapital: tier1.Add(tier2),
	}
}

type capitalRatios struct {
	cet1     models.RatioCheck
	tier1    models.RatioCheck
	total    models.RatioCheck
	leverage models.RatioCheck
}

func computeCapitalRatios(capital models.CapitalComponents, rwa, totalAssets decimal.Decimal, policy config.RegulatoryPolicy) capitalRatios {
	return capitalRatios{
		cet1:     models.NewRatioCheck(aggregation.Percent(capital.CET1, rwa), policy.MinCET1Ratio),
		tier1:    models.NewRatioCheck(aggregation.Percent(capital.Tier1, rwa), policy.MinTier1Ratio),
		total:    models.NewRatioCheck(aggregation.Percent(capital.TotalCapital, rwa), policy.MinTotalCapitalRatio),
		leverage: models.NewRatioCheck(aggregation.Percent(capital.Tier1, totalAssets), policy.MinLeverageRatio),
	}
}

func buildBaselIII(header models.ReportHeader, asOf time.Time, pos prudentialPosition, policy config.RegulatoryPolicy) *models.BaselIIIReport {
	ratios := computeCapitalRatios(pos.capital, pos.totalRWA, pos.sheet.Assets.Total, policy)

	hqla := sumWeighted(hqlaLines(pos, policy))
	outflows := aggregation.RoundCurrency(pos.sheet.Liabilities.Deposits.Mul(policy.SimpleOutflowRate))
	lcr := models.NewRatioCheck(aggregation.Percent(hqla, outflows), policy.MinLCR)

	asf := sumWeighted(availableFundingLines(pos, policy))
	rsf := sumWeighted(requiredFundingLines(pos, policy))
	nsfr := models.NewRatioCheck(aggregation.Percent(asf, rsf), policy.MinNSFR)

	compliant := ratios.cet1.Compliant && ratios.tier1.Compliant && ratios.total.Compliant &&
		ratios.leverage.Compliant && lcr.Compliant && nsfr.Compliant

	return &models.BaselIIIReport{
		ReportHeader:           header,
		AsOf:                   asOf,
		Capital:                pos.capital,
		Exposures:              pos.exposures,
		TotalAssets:            pos.sheet.Assets.Total,
		TotalRWA:               pos.totalRWA,
		HQLA:                   hqla,
		NetCashOutflows:        outflows,
		AvailableStableFunding: asf,
		RequiredStableFunding:  rsf,
		CET1Ratio:              ratios.cet1,
		Tier1Ratio:             ratios.tier1,
		TotalCapitalRatio:      ratios.total,
		LeverageRatio:          ratios.leverage,
		LCR:                    lcr,
		NSFR:                   nsfr,
		Compliant:              compliant,
	}
}

// annualisedGrossIncome scales the period's revenue to twelve months.
func annualisedGrossIncome(revenue decimal.Decimal, period models.Period) decimal.Decimal {
	months := decimal.NewFromInt(int64(periodMonths(period)))
	return aggregation.RoundCurrency(revenue.Mul(monthsPerYear).Div(months))
}

func buildCapitalAdequacy(header models.ReportHeader, asOf time.Time, pos prudentialPosition, revenue models.RevenueLines, period models.Period, policy *config.Policy) *models.CapitalAdequacyReport {
	reg := policy.Regulatory

	tradingVaR := valueAtRisk(pos.sheet.Assets.Investments, policy.Risk)
	marketRWA := aggregation.RoundCurrency(tradingVaR.Mul(reg.MarketRiskMultiplier))

	charge := aggregation.RoundCurrency(annualisedGrossIncome(revenue.Total, period).Mul(reg.OperationalRiskAlpha))
	operationalRWA := aggregation.RoundCurrency(charge.Mul(reg.MarketRiskMultiplier))

	totalRWA := aggregation.Sum(pos.totalRWA, marketRWA, operationalRWA)
	ratios := computeCapitalRatios(pos.capital, totalRWA, pos.sheet.Assets.Total, reg)
	buffered := models.NewRatioCheck(ratios.cet1.Value, reg.MinCET1Ratio.Add(reg.ConservationBuffer))

	required := aggregation.RoundCurrency(totalRWA.Mul(reg.MinTotalCapitalRatio).Div(hundred))

	return &models.CapitalAdequacyReport{
		ReportHeader:       header,
		AsOf:               asOf,
		Capital:            pos.capital,
		CreditRWA:          pos.totalRWA,
		MarketRWA:          marketRWA,
		OperationalRWA:     operationalRWA,
		TotalRWA:           totalRWA,
		CET1Ratio:          ratios.cet1,
		Tier1Ratio:         ratios.tier1,
		CapitalAdequacy:    ratios.total,
		ConservationBuffer: reg.ConservationBuffer,
		CET1WithBuffer:     buffered,
		CapitalSurplus:     pos.capital.TotalCapital.Sub(required),
		Compliant:          ratios.cet1.Compliant && ratios.tier1.Compliant && ratios.total.Compliant && buffered.Compliant,
	}
}
