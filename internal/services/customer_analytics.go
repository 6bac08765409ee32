package services

import (
	"fmt"
	"strconv"
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	tierInactive = "inactive"
	tierLow      = "low"
	tierMedium   = "medium"
	tierHigh     = "high"
)

var frequencyTiers = []string{tierInactive, tierLow, tierMedium, tierHigh}

func activeAt(t time.Time) func(models.Customer) bool {
	return func(c models.Customer) bool { return c.ActiveAt(t) }
}

func countLabels(customers []models.Customer, label func(models.Customer) string) map[string]int {
	counts := make(map[string]int)
	for _, c := range customers {
		counts[labelOrUnknown(label(c))]++
	}
	return counts
}

func buildAcquisition(header models.ReportHeader, period models.Period, customers []models.Customer, policy config.CustomerPolicy) *models.CustomerAcquisitionReport {
	asOf := period.EndOfDay()
	beforeStart := period.StartDate.Add(-time.Nanosecond)

	acquired := aggregation.Filter(customers, func(c models.Customer) bool { return inPeriod(c.CreatedAt, period) })
	total := aggregation.CountBy(customers, activeAt(asOf))
	atStart := aggregation.CountBy(customers, activeAt(beforeStart))

	channels := countLabels(acquired, func(c models.Customer) string { return c.AcquisitionChannel })
	segments := countLabels(acquired, func(c models.Customer) string { return c.Segment })

	buckets := aggregation.BucketByTrailingPeriod(customers, func(c models.Customer) time.Time {
		return c.CreatedAt
	}, aggregation.UnitMonth, policy.TrendMonths, period.EndDate)
	trend := make([]models.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		trend = append(trend, models.TrendPoint{Period: b.Label, Count: len(b.Rows), Amount: decimal.Zero})
	}

	return &models.CustomerAcquisitionReport{
		ReportHeader:   header,
		NewCustomers:   len(acquired),
		TotalCustomers: total,
		NewShare:       aggregation.PercentInt(len(acquired), total),
		GrowthRate:     aggregation.PercentInt(total-atStart, atStart),
		ByChannel:      countShares(orderedLabels(nil, channels), channels),
		BySegment:      countShares(orderedLabels(models.Segments, segments), segments),
		Trend:          trend,
	}
}

func retentionRates(active, retained int) (decimal.Decimal, decimal.Decimal) {
	if active == 0 {
		return decimal.Zero, decimal.Zero
	}
	retention := aggregation.PercentInt(retained, active)
	return retention, hundred.Sub(retention)
}

// buildRetention follows the customers active at the start of the period to its end.
func buildRetention(header models.ReportHeader, period models.Period, customers []models.Customer) *models.CustomerRetentionReport {
	cohort := aggregation.Filter(customers, activeAt(period.StartDate))
	stillActive := activeAt(period.EndOfDay())
	retained := aggregation.CountBy(cohort, stillActive)
	retention, churn := retentionRates(len(cohort), retained)

	bySegment := aggregation.GroupBy(cohort, func(c models.Customer) string { return labelOrUnknown(c.Segment) })
	segmentCounts := make(map[string]int, bySegment.Len())
	for _, segment := range bySegment.Keys() {
		segmentCounts[segment] = len(bySegment.Get(segment))
	}

	segments := make([]models.SegmentRetention, 0, len(models.Segments))
	for _, segment := range orderedLabels(models.Segments, segmentCounts) {
		rows := bySegment.Get(segment)
		kept := aggregation.CountBy(rows, stillActive)
		segRetention, segChurn := retentionRates(len(rows), kept)
		segments = append(segments, models.SegmentRetention{
			Segment:       segment,
			ActiveAtStart: len(rows),
			Retained:      kept,
			Churned:       len(rows) - kept,
			RetentionRate: segRetention,
			ChurnRate:     segChurn,
		})
	}

	return &models.CustomerRetentionReport{
		ReportHeader:  header,
		ActiveAtStart: len(cohort),
		Retained:      retained,
		Churned:       len(cohort) - retained,
		RetentionRate: retention,
		ChurnRate:     churn,
		BySegment:     segments,
	}
}

func buildSatisfaction(header models.ReportHeader, period models.Period, customers []models.Customer, policy config.CustomerPolicy) *models.CustomerSatisfactionReport {
	population := aggregation.Filter(customers, activeAt(period.EndOfDay()))

	scored := aggregation.Filter(population, func(c models.Customer) bool { return c.SatisfactionScore != nil })
	scoreCounts := make(map[string]int)
	scoreTotal, satisfied := 0, 0
	for _, c := range scored {
		score := aggregation.IntOrZero(c.SatisfactionScore)
		scoreCounts[strconv.Itoa(score)]++
		scoreTotal += score
		if score >= policy.SatisfiedScore {
			satisfied++
		}
	}

	promoters, passives, detractors := 0, 0, 0
	npsResponses := 0
	for _, c := range population {
		if c.NPSScore == nil {
			continue
		}
		npsResponses++
		switch score := aggregation.IntOrZero(c.NPSScore); {
		case score >= policy.PromoterScore:
			promoters++
		case score <= policy.DetractorScore:
			detractors++
		default:
			passives++
		}
	}

	average := aggregation.RoundRatio(aggregation.SafeRatio(
		decimal.NewFromInt(int64(scoreTotal)),
		decimal.NewFromInt(int64(len(scored))),
	))
	nps := aggregation.PercentInt(promoters, npsResponses).Sub(aggregation.PercentInt(detractors, npsResponses))

	return &models.CustomerSatisfactionReport{
		ReportHeader: header,
		Customers:    len(population),
		Responses:    len(scored),
		ResponseRate: aggregation.PercentInt(len(scored), len(population)),
		AverageScore: average,
		CSAT:         aggregation.PercentInt(satisfied, len(scored)),
		Distribution: countShares([]string{"1", "2", "3", "4", "5"}, scoreCounts),
		NPSResponses: npsResponses,
		Promoters:    promoters,
		Passives:     passives,
		Detractors:   detractors,
		NPS:          nps,
	}
}

// ageBandLabels names the bands opened by each start age, plus the band below
// the first start and one for missing birth dates.
func ageBandLabels(starts []int) []string {
	if len(starts) == 0 {
		return []string{unknownLabel}
	}
	labels := []string{fmt.Sprintf("under %d", starts[0])}
	for i, start := range starts {
		if i+1 < len(starts) {
			labels = append(labels, fmt.Sprintf("%d-%d", start, starts[i+1]-1))
		} else {
			labels = append(labels, fmt.Sprintf("%d+", start))
		}
	}
	return append(labels, unknownLabel)
}

func ageBand(age int, starts []int, labels []string) string {
	band := 0
	for i, start := range starts {
		if age >= start {
			band = i + 1
		}
	}
	return labels[band]
}

func buildDemographics(header models.ReportHeader, period models.Period, customers []models.Customer, policy config.CustomerPolicy) *models.CustomerDemographicsReport {
	asOf := period.EndOfDay()
	population := aggregation.Filter(customers, activeAt(asOf))

	labels := ageBandLabels(policy.AgeBandStarts)
	bandCounts := make(map[string]int)
	ageTotal, aged := 0, 0
	for _, c := range population {
		if c.DateOfBirth == nil || len(policy.AgeBandStarts) == 0 {
			bandCounts[unknownLabel]++
			continue
		}
		age := aggregation.YearsBetween(*c.DateOfBirth, asOf)
		bandCounts[ageBand(age, policy.AgeBandStarts, labels)]++
		ageTotal += age
		aged++
	}

	gender := countLabels(population, func(c models.Customer) string { return c.Gender })
	region := countLabels(population, func(c models.Customer) string { return c.Region })
	segment := countLabels(population, func(c models.Customer) string { return c.Segment })

	return &models.CustomerDemographicsReport{
		ReportHeader:   header,
		TotalCustomers: len(population),
		AverageAge:     aggregation.RoundRatio(aggregation.SafeRatio(decimal.NewFromInt(int64(ageTotal)), decimal.NewFromInt(int64(aged)))),
		AgeBands:       countShares(labels, bandCounts),
		Gender:         countShares(orderedLabels(nil, gender), gender),
		Region:         countShares(orderedLabels(nil, region), region),
		Segment:        countShares(orderedLabels(models.Segments, segment), segment),
	}
}

func frequencyTier(count int, policy config.CustomerPolicy) string {
	switch {
	case count == 0:
		return tierInactive
	case count <= policy.LowActivityMax:
		return tierLow
	case count <= policy.MediumActivityMax:
		return tierMedium
	default:
		return tierHigh
	}
}

type behaviorInputs struct {
	customers    []models.Customer
	accounts     []models.Account
	transactions []models.Transaction
}

func buildBehavior(header models.ReportHeader, period models.Period, in behaviorInputs, policy config.CustomerPolicy) *models.CustomerBehaviorReport {
	population := aggregation.Filter(in.customers, activeAt(period.EndOfDay()))
	members := make(map[uuid.UUID]bool, len(population))
	for _, c := range population {
		members[c.ID] = true
	}

	owner := make(map[uuid.UUID]uuid.UUID, len(in.accounts))
	products := 0
	for _, a := range in.accounts {
		owner[a.ID] = a.CustomerID
		if members[a.CustomerID] && a.IsActive() {
			products++
		}
	}

	activity := aggregation.Filter(in.transactions, func(t models.Transaction) bool {
		customerID, ok := owner[t.AccountID]
		return ok && members[customerID] && t.IsCompleted()
	})

	perCustomer := make(map[uuid.UUID]int, len(population))
	channels := make(map[string]int)
	for _, t := range activity {
		perCustomer[owner[t.AccountID]]++
		channels[labelOrUnknown(t.Channel)]++
	}

	tiers := make(map[string]int)
	for _, c := range population {
		tiers[frequencyTier(perCustomer[c.ID], policy)]++
	}

	volume := aggregation.RoundCurrency(aggregation.SumBy(activity, nil, models.Transaction.Volume))
	customerCount := decimal.NewFromInt(int64(len(population)))

	return &models.CustomerBehaviorReport{
		ReportHeader:            header,
		ActiveCustomers:         len(population),
		TransactionCount:        len(activity),
		TransactionVolume:       volume,
		AverageTransactionValue: aggregation.RoundCurrency(aggregation.SafeRatio(volume, decimal.NewFromInt(int64(len(activity))))),
		FrequencyTiers:          countShares(frequencyTiers, tiers),
		ChannelUsage:            countShares(orderedLabels(models.Channels, channels), channels),
		ProductsPerCustomer:     aggregation.RoundRatio(aggregation.SafeRatio(decimal.NewFromInt(int64(products)), customerCount)),
		TransactionsPerCustomer: aggregation.RoundRatio(aggregation.SafeRatio(decimal.NewFromInt(int64(len(activity))), customerCount)),
	}
}
