package services

import (
	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

func hasStatus(status string) func(models.Transaction) bool {
	return func(t models.Transaction) bool { return t.Status == status }
}

func keyRiskIndicator(name string, value, threshold decimal.Decimal) models.KeyRiskIndicator {
	return models.KeyRiskIndicator{
		Name:      name,
		Value:     value,
		Threshold: threshold,
		Breached:  value.GreaterThan(threshold),
	}
}

// buildOperationalRisk reads every transaction of the period regardless of
// status. Reversals are the loss events.
func buildOperationalRisk(header models.ReportHeader, period models.Period, in revenueInputs, policy *config.Policy) *models.OperationalRiskReport {
	total := len(in.transactions)
	failed := aggregation.Filter(in.transactions, hasStatus(models.TransactionStatusFailed))
	reversed := aggregation.Filter(in.transactions, hasStatus(models.TransactionStatusReversed))

	failureRate := aggregation.PercentInt(len(failed), total)
	reversalRate := aggregation.PercentInt(len(reversed), total)

	channelCounts := make(map[string]int)
	for _, t := range failed {
		channelCounts[labelOrUnknown(t.Channel)]++
	}

	revenue := computeRevenue(in, policy.Financial)
	annualised := annualisedGrossIncome(revenue.Total, period)

	return &models.OperationalRiskReport{
		ReportHeader:          header,
		TotalTransactions:     total,
		FailedCount:           len(failed),
		ReversedCount:         len(reversed),
		FailureRate:           failureRate,
		ReversalRate:          reversalRate,
		LossEventCount:        len(reversed),
		LossEventAmount:       aggregation.RoundCurrency(aggregation.SumBy(reversed, nil, models.Transaction.Volume)),
		FailuresByChannel:     countShares(orderedLabels(models.Channels, channelCounts), channelCounts),
		GrossIncome:           revenue.Total,
		AnnualisedGrossIncome: annualised,
		CapitalCharge:         aggregation.RoundCurrency(annualised.Mul(policy.Regulatory.OperationalRiskAlpha)),
		Indicators: []models.KeyRiskIndicator{
			keyRiskIndicator("failure_rate", failureRate, policy.Risk.MaxFailureRate),
			keyRiskIndicator("reversal_rate", reversalRate, policy.Risk.MaxReversalRate),
		},
	}
}
