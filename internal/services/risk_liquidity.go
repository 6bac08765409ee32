package services

import (
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

var ladderBuckets = []string{"overnight", "2-7d", "8-30d", "1-3m", "3-6m", "6-12m", ">1y"}

type ladderClass struct {
	profile string
	balance decimal.Decimal
}

func allocate(classes []ladderClass, profiles map[string][]decimal.Decimal, bucket int) decimal.Decimal {
	total := decimal.Zero
	for _, c := range classes {
		weights := profiles[c.profile]
		if bucket < len(weights) {
			total = total.Add(c.balance.Mul(weights[bucket]))
		}
	}
	return aggregation.RoundCurrency(total)
}

// buildLiquidityRisk spreads the balance sheet over the maturity ladder using
// the fixed behavioural profiles.
func buildLiquidityRisk(header models.ReportHeader, asOf time.Time, sheet *models.BalanceSheet, policy config.RiskPolicy) *models.LiquidityRiskReport {
	deposits := sheet.DepositsByType
	assets := []ladderClass{
		{config.ProfileCash, sheet.Assets.Cash},
		{config.ProfileInvestments, sheet.Assets.Investments},
		{config.ProfileLoans, sheet.Assets.Loans},
	}
	liabilities := []ladderClass{
		{config.ProfileDemandDeposits, lineAmount(deposits, models.AccountTypeChecking).Add(lineAmount(deposits, models.AccountTypeBusiness))},
		{config.ProfileSavings, lineAmount(deposits, models.AccountTypeSavings)},
		{config.ProfileTermDeposits, lineAmount(deposits, models.AccountTypeTerm)},
		{config.ProfileBorrowings, sheet.Liabilities.Borrowings},
	}

	buckets := make([]models.LadderBucket, len(ladderBuckets))
	totalAssets, totalLiabilities := decimal.Zero, decimal.Zero
	for i, label := range ladderBuckets {
		a := allocate(assets, policy.MaturityProfiles, i)
		l := allocate(liabilities, policy.MaturityProfiles, i)
		buckets[i] = models.LadderBucket{Bucket: label, Assets: a, Liabilities: l, Gap: a.Sub(l)}
		totalAssets = totalAssets.Add(a)
		totalLiabilities = totalLiabilities.Add(l)
	}

	firstNegative := ""
	cumulative := decimal.Zero
	for i := range buckets {
		cumulative = cumulative.Add(buckets[i].Gap)
		buckets[i].CumulativeGap = cumulative
		buckets[i].CumulativeGapPercent = aggregation.Percent(cumulative, totalAssets)
		if firstNegative == "" && cumulative.IsNegative() {
			firstNegative = buckets[i].Bucket
		}
	}

	return &models.LiquidityRiskReport{
		ReportHeader:        header,
		AsOf:                asOf,
		Buckets:             buckets,
		TotalAssets:         totalAssets,
		TotalLiabilities:    totalLiabilities,
		FirstNegativeBucket: firstNegative,
	}
}
