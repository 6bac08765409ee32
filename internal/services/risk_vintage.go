package services

import (
	"sort"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var rollTargets = append(append([]string{}, models.DelinquencyBuckets...), models.DelinquencyClosed)

func delinquencyBucket(dpd int) string {
	switch {
	case dpd <= 0:
		return models.DelinquencyCurrent
	case dpd <= 30:
		return models.Delinquency1To30
	case dpd <= 60:
		return models.Delinquency31To60
	case dpd <= 90:
		return models.Delinquency61To90
	default:
		return models.Delinquency90Plus
	}
}

// snapshotBucket places an on-book snapshot. Write-offs count as 90+.
func snapshotBucket(s models.LoanSnapshot) string {
	if s.Status == models.LoanStatusWrittenOff {
		return models.Delinquency90Plus
	}
	return delinquencyBucket(s.DaysPastDue)
}

// loanHistories orders each loan's snapshots by date.
func loanHistories(snapshots []models.LoanSnapshot) map[uuid.UUID][]models.LoanSnapshot {
	histories := make(map[uuid.UUID][]models.LoanSnapshot)
	for _, s := range snapshots {
		histories[s.LoanID] = append(histories[s.LoanID], s)
	}
	for id := range histories {
		h := histories[id]
		sort.SliceStable(h, func(i, j int) bool {
			if !h[i].SnapshotDate.Equal(h[j].SnapshotDate) {
				return h[i].SnapshotDate.Before(h[j].SnapshotDate)
			}
			return h[i].MonthsOnBook < h[j].MonthsOnBook
		})
	}
	return histories
}

func vintageCurve(loans []models.Loan, histories map[uuid.UUID][]models.LoanSnapshot, maxMOB int) []models.VintagePoint {
	firstNinetyPlus := make(map[uuid.UUID]int)
	for _, l := range loans {
		for _, s := range histories[l.ID] {
			if s.Status == models.LoanStatusClosed || snapshotBucket(s) != models.Delinquency90Plus {
				continue
			}
			if mob, seen := firstNinetyPlus[l.ID]; !seen || s.MonthsOnBook < mob {
				firstNinetyPlus[l.ID] = s.MonthsOnBook
			}
		}
	}

	curve := make([]models.VintagePoint, 0, maxMOB+1)
	for mob := 0; mob <= maxMOB; mob++ {
		counts := make(map[string]int)
		observations := 0
		for _, l := range loans {
			for _, s := range histories[l.ID] {
				if s.MonthsOnBook != mob || s.Status == models.LoanStatusClosed {
					continue
				}
				counts[snapshotBucket(s)]++
				observations++
			}
		}

		reached := 0
		for _, first := range firstNinetyPlus {
			if first <= mob {
				reached++
			}
		}

		curve = append(curve, models.VintagePoint{
			MonthsOnBook:         mob,
			Observations:         observations,
			Distribution:         countShares(models.DelinquencyBuckets, counts),
			Cumulative90Plus:     reached,
			Cumulative90PlusRate: aggregation.PercentInt(reached, len(loans)),
		})
	}
	return curve
}

// transition is one observed move of a loan between consecutive snapshots.
type transition struct {
	from string
	to   string
}

// loanTransitions lists the moves out of on-book snapshots. A move into a
// closed or written-off snapshot, or a final snapshot followed by closure of
// the loan, lands in the closed column.
func loanTransitions(loan models.Loan, history []models.LoanSnapshot) []transition {
	var out []transition
	for i, s := range history {
		if s.IsClosed() {
			continue
		}
		from := delinquencyBucket(s.DaysPastDue)
		if i+1 < len(history) {
			next := history[i+1]
			to := models.DelinquencyClosed
			if !next.IsClosed() {
				to = delinquencyBucket(next.DaysPastDue)
			}
			out = append(out, transition{from: from, to: to})
			continue
		}
		if loan.Status == models.LoanStatusClosed || loan.Status == models.LoanStatusWrittenOff {
			out = append(out, transition{from: from, to: models.DelinquencyClosed})
		}
	}
	return out
}

func buildVintageAnalysis(header models.ReportHeader, period models.Period, loans []models.Loan, snapshots []models.LoanSnapshot, policy config.RiskPolicy) *models.VintageAnalysisReport {
	originated := aggregation.Filter(loans, func(l models.Loan) bool { return inPeriod(l.DisbursedAt, period) })
	histories := loanHistories(snapshots)

	byCohort := aggregation.GroupBy(originated, func(l models.Loan) string { return aggregation.QuarterLabel(l.DisbursedAt) })
	labels := byCohort.Keys()
	sort.Strings(labels)

	cohorts := make([]models.VintageCohort, 0, len(labels))
	for _, label := range labels {
		rows := byCohort.Get(label)
		cohorts = append(cohorts, models.VintageCohort{
			Cohort:    label,
			LoanCount: len(rows),
			Disbursed: aggregation.RoundCurrency(aggregation.SumBy(rows, nil, func(l models.Loan) decimal.Decimal { return l.Principal })),
			Curve:     vintageCurve(rows, histories, policy.VintageMaxMonthsOnBook),
		})
	}

	var transitions []transition
	for _, l := range originated {
		transitions = append(transitions, loanTransitions(l, histories[l.ID])...)
	}

	return &models.VintageAnalysisReport{
		ReportHeader: header,
		Cohorts:      cohorts,
		FlowRates:    flowRates(transitions),
		RollRates:    rollRates(transitions),
	}
}

// flowRates is the share of loans in each bucket that worsen by exactly one bucket.
func flowRates(transitions []transition) []models.FlowRate {
	buckets := models.DelinquencyBuckets
	rates := make([]models.FlowRate, 0, len(buckets)-1)
	for i := 0; i+1 < len(buckets); i++ {
		from, to := buckets[i], buckets[i+1]
		observations, rolled := 0, 0
		for _, t := range transitions {
			if t.from != from {
				continue
			}
			observations++
			if t.to == to {
				rolled++
			}
		}
		rates = append(rates, models.FlowRate{
			From:         from,
			To:           to,
			Observations: observations,
			Rate:         aggregation.PercentInt(rolled, observations),
		})
	}
	return rates
}

// rollRates builds the transition matrix. Populated rows sum to 100.
func rollRates(transitions []transition) []models.RollRateRow {
	rows := make([]models.RollRateRow, 0, len(models.DelinquencyBuckets))
	for _, from := range models.DelinquencyBuckets {
		counts := make(map[string]int)
		observations := 0
		for _, t := range transitions {
			if t.from == from {
				counts[t.to]++
				observations++
			}
		}
		rows = append(rows, models.RollRateRow{
			From:         from,
			Observations: observations,
			To:           countShares(rollTargets, counts),
		})
	}
	return rows
}
