package services

import (
	"sort"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

const unspecifiedRecovery = "unspecified"

var nplAgingBuckets = []string{"0-30", "31-60", "61-90", "91-180", "181-365", "365+"}

func nplAgingBucket(dpd int) string {
	switch {
	case dpd <= 30:
		return "0-30"
	case dpd <= 60:
		return "31-60"
	case dpd <= 90:
		return "61-90"
	case dpd <= 180:
		return "91-180"
	case dpd <= 365:
		return "181-365"
	default:
		return "365+"
	}
}

// classifiedExposure is the amount a loan carried when it became non-performing:
// what is still outstanding plus what has since been recovered or written off.
func classifiedExposure(l models.Loan) decimal.Decimal {
	return aggregation.Sum(l.OutstandingBalance, aggregation.OrZero(l.RecoveredAmount), aggregation.OrZero(l.WrittenOffAmount))
}

func recoveredAmount(l models.Loan) decimal.Decimal {
	return aggregation.OrZero(l.RecoveredAmount)
}

func writtenOffAmount(l models.Loan) decimal.Decimal {
	return aggregation.OrZero(l.WrittenOffAmount)
}

// nplMovement reconciles the NPL stock over the period. Loans without a
// classification date that are non-performing today count as classified
// before the period. Components are rounded first so the identities hold exactly.
func nplMovement(loans []models.Loan, period models.Period, recovered decimal.Decimal, dpdThreshold int) models.NPLMovement {
	start := period.StartDate

	everNPL := aggregation.Filter(loans, func(l models.Loan) bool {
		return l.NPLClassifiedAt != nil || l.IsNonPerforming(dpdThreshold)
	})
	classifiedBefore := func(l models.Loan) bool {
		return l.NPLClassifiedAt == nil || l.NPLClassifiedAt.Before(start)
	}

	openingGross := aggregation.SumBy(everNPL, classifiedBefore, classifiedExposure)
	recoveredBefore := aggregation.SumBy(everNPL, func(l models.Loan) bool {
		return classifiedBefore(l) && l.RecoveredAt != nil && l.RecoveredAt.Before(start)
	}, recoveredAmount)
	writtenOffBefore := aggregation.SumBy(everNPL, func(l models.Loan) bool {
		return classifiedBefore(l) && l.WrittenOffAt != nil && l.WrittenOffAt.Before(start)
	}, writtenOffAmount)
	opening := aggregation.RoundCurrency(openingGross.Sub(recoveredBefore).Sub(writtenOffBefore))

	newNPL := aggregation.RoundCurrency(aggregation.SumBy(everNPL, func(l models.Loan) bool {
		return withinPeriod(l.NPLClassifiedAt, period)
	}, classifiedExposure))

	writtenOff := aggregation.RoundCurrency(aggregation.SumBy(loans, func(l models.Loan) bool {
		return withinPeriod(l.WrittenOffAt, period)
	}, writtenOffAmount))

	net := newNPL.Sub(recovered).Sub(writtenOff)
	return models.NPLMovement{
		Opening:     opening,
		NewNPL:      newNPL,
		Recovered:   recovered,
		WrittenOff:  writtenOff,
		NetMovement: net,
		Closing:     opening.Add(net),
	}
}

// recoveriesByMethod groups the period's recoveries. The total is the sum of
// the rounded per-method amounts.
func recoveriesByMethod(loans []models.Loan, period models.Period) ([]models.AmountShare, decimal.Decimal) {
	recoveries := aggregation.Filter(loans, func(l models.Loan) bool {
		return withinPeriod(l.RecoveredAt, period)
	})
	byMethod := aggregation.GroupBy(recoveries, func(l models.Loan) string {
		if l.RecoveryMethod == "" {
			return unspecifiedRecovery
		}
		return l.RecoveryMethod
	})

	methods := byMethod.Keys()
	sort.Strings(methods)

	counts := make(map[string]int, len(methods))
	amounts := make(map[string]decimal.Decimal, len(methods))
	total := decimal.Zero
	for _, method := range methods {
		rows := byMethod.Get(method)
		amount := aggregation.RoundCurrency(aggregation.SumBy(rows, nil, recoveredAmount))
		counts[method] = len(rows)
		amounts[method] = amount
		total = total.Add(amount)
	}
	return amountShares(methods, counts, amounts, true), total
}

func buildNPLAnalysis(header models.ReportHeader, period models.Period, loans []models.Loan, policy config.RiskPolicy) *models.NPLAnalysisReport {
	asOf := period.EndOfDay()
	book := aggregation.Filter(loans, func(l models.Loan) bool {
		return l.Status != models.LoanStatusClosed && !l.DisbursedAt.After(asOf)
	})
	npl := aggregation.Filter(book, func(l models.Loan) bool {
		return l.IsNonPerforming(policy.NPLDaysPastDue)
	})

	nplAmount := aggregation.RoundCurrency(aggregation.SumBy(npl, nil, outstanding))
	totalOutstanding := aggregation.RoundCurrency(aggregation.SumBy(book, nil, outstanding))

	agingCounts := make(map[string]int)
	agingAmounts := make(map[string]decimal.Decimal)
	byAge := aggregation.GroupBy(npl, func(l models.Loan) string { return nplAgingBucket(l.DaysPastDue) })
	for _, bucket := range nplAgingBuckets {
		rows := byAge.Get(bucket)
		agingCounts[bucket] = len(rows)
		agingAmounts[bucket] = aggregation.RoundCurrency(aggregation.SumBy(rows, nil, outstanding))
	}

	typeCounts := make(map[string]int)
	typeAmounts := make(map[string]decimal.Decimal)
	byType := aggregation.GroupBy(npl, func(l models.Loan) string { return l.LoanType })
	for _, loanType := range byType.Keys() {
		rows := byType.Get(loanType)
		typeCounts[loanType] = len(rows)
		typeAmounts[loanType] = aggregation.RoundCurrency(aggregation.SumBy(rows, nil, outstanding))
	}

	recoveries, totalRecovered := recoveriesByMethod(loans, period)

	return &models.NPLAnalysisReport{
		ReportHeader:     header,
		NPLCount:         len(npl),
		NPLAmount:        nplAmount,
		TotalLoans:       len(book),
		TotalOutstanding: totalOutstanding,
		RatioByCount:     aggregation.PercentInt(len(npl), len(book)),
		RatioByAmount:    aggregation.Percent(nplAmount, totalOutstanding),
		Aging:            amountShares(nplAgingBuckets, agingCounts, agingAmounts, false),
		ByLoanType:       amountShares(orderedLabels(models.LoanTypes, typeCounts), typeCounts, typeAmounts, false),
		Movement:         nplMovement(loans, period, totalRecovered, policy.NPLDaysPastDue),
		Recoveries:       recoveries,
		TotalRecovered:   totalRecovered,
	}
}
