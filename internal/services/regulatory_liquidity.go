package services

import (
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

func weighted(category string, balance, factor decimal.Decimal) models.WeightedLine {
	return models.WeightedLine{
		Category: category,
		Balance:  balance,
		Factor:   factor.Round(4),
		Weighted: aggregation.RoundCurrency(balance.Mul(factor)),
	}
}

func sumWeighted(lines []models.WeightedLine) decimal.Decimal {
	return aggregation.SumBy(lines, nil, func(l models.WeightedLine) decimal.Decimal { return l.Weighted })
}

// hqlaLines applies the level haircuts to the liquid asset classes.
func hqlaLines(pos prudentialPosition, policy config.RegulatoryPolicy) []models.WeightedLine {
	return []models.WeightedLine{
		weighted("level1_cash", pos.sheet.Assets.Cash, one),
		weighted("level1_government_bonds", pos.governmentBonds, one),
		weighted("level2a_corporate_bonds", pos.corporateBonds, policy.CorporateBondHQLAFactor),
		weighted("level2b_other_securities", pos.otherSecurities, policy.OtherSecurityHQLAFactor),
	}
}

func availableFundingLines(pos prudentialPosition, policy config.RegulatoryPolicy) []models.WeightedLine {
	deposits := pos.sheet.DepositsByType
	retail := lineAmount(deposits, models.AccountTypeChecking).Add(lineAmount(deposits, models.AccountTypeSavings))
	factors := policy.AvailableStableFunding

	return []models.WeightedLine{
		weighted("capital", pos.capital.TotalCapital, factors.Capital),
		weighted("retail_deposits", retail, factors.RetailDeposits),
		weighted("term_deposits", lineAmount(deposits, models.AccountTypeTerm), factors.TermDeposits),
		weighted("business_deposits", lineAmount(deposits, models.AccountTypeBusiness), factors.BusinessDeposits),
		weighted("borrowings", pos.sheet.Liabilities.Borrowings, factors.Borrowings),
	}
}

func requiredFundingLines(pos prudentialPosition, policy config.RegulatoryPolicy) []models.WeightedLine {
	factors := policy.RequiredStableFunding
	assets := pos.sheet.Assets

	return []models.WeightedLine{
		weighted(assetCash, assets.Cash, factors.Cash),
		weighted(assetGovernmentBonds, pos.governmentBonds, factors.GovernmentBonds),
		weighted(assetCorporateBonds, pos.corporateBonds, factors.CorporateBonds),
		weighted(assetOtherSecurities, pos.otherSecurities, factors.OtherSecurities),
		weighted(assetRetailLoans, pos.retailLoans, factors.RetailLoans),
		weighted(assetCorporateLoans, pos.corporateLoans, factors.CorporateLoans),
		weighted(assetFixedAndOther, assets.FixedAssets.Add(assets.OtherAssets), factors.FixedAndOther),
	}
}

// buildLCR stresses thirty days of deposit run-off and one month of
// borrowings against the liquid asset buffer. Inflows are capped.
func buildLCR(header models.ReportHeader, asOf time.Time, pos prudentialPosition, policy config.RegulatoryPolicy) *models.LCRReport {
	hqla := hqlaLines(pos, policy)
	totalHQLA := sumWeighted(hqla)

	outflows := make([]models.WeightedLine, 0, len(models.AccountTypes)+1)
	for _, accountType := range models.AccountTypes {
		outflows = append(outflows, weighted(
			accountType+"_deposits",
			lineAmount(pos.sheet.DepositsByType, accountType),
			policy.DepositOutflowRates[accountType],
		))
	}
	outflows = append(outflows, weighted("borrowings", pos.sheet.Liabilities.Borrowings, policy.BorrowingOutflowRate.Div(monthsPerYear)))
	totalOutflows := sumWeighted(outflows)

	inflows := []models.WeightedLine{
		weighted("loan_amortisation", pos.sheet.Assets.Loans, policy.LoanInflowRate.Div(monthsPerYear)),
	}
	grossInflows := sumWeighted(inflows)
	inflowCap := aggregation.RoundCurrency(totalOutflows.Mul(policy.InflowCapRate))
	capped := decimal.Min(grossInflows, inflowCap)
	net := totalOutflows.Sub(capped)

	return &models.LCRReport{
		ReportHeader:    header,
		AsOf:            asOf,
		HQLA:            hqla,
		TotalHQLA:       totalHQLA,
		Outflows:        outflows,
		TotalOutflows:   totalOutflows,
		Inflows:         inflows,
		GrossInflows:    grossInflows,
		InflowCap:       inflowCap,
		CappedInflows:   capped,
		NetCashOutflows: net,
		LCR:             models.NewRatioCheck(aggregation.Percent(totalHQLA, net), policy.MinLCR),
	}
}

func buildNSFR(header models.ReportHeader, asOf time.Time, pos prudentialPosition, policy config.RegulatoryPolicy) *models.NSFRReport {
	asf := availableFundingLines(pos, policy)
	rsf := requiredFundingLines(pos, policy)
	totalASF := sumWeighted(asf)
	totalRSF := sumWeighted(rsf)

	return &models.NSFRReport{
		ReportHeader:           header,
		AsOf:                   asOf,
		AvailableStableFunding: asf,
		TotalASF:               totalASF,
		RequiredStableFunding:  rsf,
		TotalRSF:               totalRSF,
		NSFR:                   models.NewRatioCheck(aggregation.Percent(totalASF, totalRSF), policy.MinNSFR),
	}
}
