package services

import (
	"sort"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type samaInputs struct {
	accounts     []models.Account
	loans        []models.Loan
	transactions []models.Transaction
}

func buildSAMAMonthly(header models.ReportHeader, period models.Period, in samaInputs, policy *config.Policy) *models.SAMAMonthlyReport {
	reg := policy.Regulatory
	asOf := period.EndOfDay()

	sheet := buildBalanceSheet(models.ReportHeader{}, asOf, in.accounts, in.loans, policy.Financial)
	deposits := sheet.Liabilities.Deposits

	book := aggregation.Filter(in.loans, func(l models.Loan) bool {
		return l.IsOnBook() && !l.DisbursedAt.After(asOf)
	})
	bookAmount := aggregation.RoundCurrency(aggregation.SumBy(book, nil, outstanding))

	defaulted := func(l models.Loan) bool { return l.Status == models.LoanStatusDefault }
	nplCount := aggregation.CountBy(book, defaulted)
	nplAmount := aggregation.RoundCurrency(aggregation.SumBy(book, defaulted, outstanding))

	liquidAssets := sheet.Assets.Cash.Add(sheet.Assets.Investments)
	loanToDeposit := models.NewRatioCeiling(aggregation.Percent(bookAmount, deposits), reg.MaxLoanToDepositRatio)
	liquidity := models.NewRatioCheck(aggregation.Percent(liquidAssets, deposits), reg.MinLiquidityRatio)

	pos := computePrudentialPosition(sheet, reg)
	revenue := computeRevenue(revenueInputs{transactions: in.transactions, loans: in.loans, accounts: in.accounts}, policy.Financial)
	adequacy := buildCapitalAdequacy(models.ReportHeader{}, asOf, pos, revenue, period, policy)

	completed := aggregation.Filter(in.transactions, models.Transaction.IsCompleted)
	large := largeTransaction(reg.LargeTransactionAmount)

	return &models.SAMAMonthlyReport{
		ReportHeader:  header,
		Deposits:      sheet.DepositsByType,
		TotalDeposits: deposits,
		Loans: models.LoanPortfolioSummary{
			Count:       len(book),
			Outstanding: bookAmount,
		},
		NPL: models.NPLSummary{
			Count:         nplCount,
			Amount:        nplAmount,
			RatioByCount:  aggregation.PercentInt(nplCount, len(book)),
			RatioByAmount: aggregation.Percent(nplAmount, bookAmount),
		},
		LoanToDeposit:   loanToDeposit,
		LiquidityRatio:  liquidity,
		CapitalAdequacy: adequacy.CapitalAdequacy,
		Transactions: models.TransactionActivity{
			Count:       len(completed),
			Volume:      aggregation.RoundCurrency(aggregation.SumBy(completed, nil, models.Transaction.Volume)),
			LargeCount:  aggregation.CountBy(completed, large),
			LargeVolume: aggregation.RoundCurrency(aggregation.SumBy(completed, large, models.Transaction.Volume)),
			Threshold:   reg.LargeTransactionAmount,
		},
		Compliant: loanToDeposit.Compliant && liquidity.Compliant && adequacy.CapitalAdequacy.Compliant,
	}
}

func largeTransaction(threshold decimal.Decimal) func(models.Transaction) bool {
	return func(t models.Transaction) bool {
		return t.Volume().GreaterThanOrEqual(threshold)
	}
}

type amlInputs struct {
	transactions []models.Transaction
	accounts     []models.Account
	customers    []models.Customer
}

// structuringSuspects finds customers splitting amounts just under the
// reporting threshold, largest total first.
func structuringSuspects(transactions []models.Transaction, accounts []models.Account, policy config.RegulatoryPolicy) []models.StructuringSuspect {
	threshold := policy.LargeTransactionAmount
	lower := threshold.Mul(policy.StructuringLowerBound)

	owner := make(map[uuid.UUID]uuid.UUID, len(accounts))
	for _, a := range accounts {
		owner[a.ID] = a.CustomerID
	}

	nearThreshold := aggregation.Filter(transactions, func(t models.Transaction) bool {
		v := t.Volume()
		_, known := owner[t.AccountID]
		return known && v.GreaterThanOrEqual(lower) && v.LessThan(threshold)
	})
	byCustomer := aggregation.GroupBy(nearThreshold, func(t models.Transaction) uuid.UUID {
		return owner[t.AccountID]
	})

	suspects := []models.StructuringSuspect{}
	for _, customerID := range byCustomer.Keys() {
		rows := byCustomer.Get(customerID)
		if len(rows) < policy.StructuringMinCount {
			continue
		}
		suspects = append(suspects, models.StructuringSuspect{
			CustomerID:       customerID,
			TransactionCount: len(rows),
			Amount:           aggregation.RoundCurrency(aggregation.SumBy(rows, nil, models.Transaction.Volume)),
		})
	}

	sort.SliceStable(suspects, func(i, j int) bool {
		if !suspects[i].Amount.Equal(suspects[j].Amount) {
			return suspects[i].Amount.GreaterThan(suspects[j].Amount)
		}
		return suspects[i].CustomerID.String() < suspects[j].CustomerID.String()
	})
	return suspects
}

func buildAMLReport(header models.ReportHeader, period models.Period, in amlInputs, policy config.RegulatoryPolicy) *models.AMLReport {
	completed := aggregation.Filter(in.transactions, models.Transaction.IsCompleted)
	large := largeTransaction(policy.LargeTransactionAmount)
	largeCount := aggregation.CountBy(completed, large)

	suspects := structuringSuspects(completed, in.accounts, policy)

	asOf := period.EndOfDay()
	active := aggregation.Filter(in.customers, func(c models.Customer) bool { return c.ActiveAt(asOf) })
	highRisk := aggregation.CountBy(active, func(c models.Customer) bool { return c.Rating() == models.RiskRatingHigh })

	kycCounts := make(map[string]int)
	for _, c := range active {
		kycCounts[labelOrUnknown(c.KYCStatus)]++
	}
	kycLabels := orderedLabels([]string{models.KYCStatusPending, models.KYCStatusVerified, models.KYCStatusRejected}, kycCounts)
	completion := models.NewRatioCheck(
		aggregation.PercentInt(kycCounts[models.KYCStatusVerified], len(active)),
		policy.MinKYCCompletionRate,
	)

	return &models.AMLReport{
		ReportHeader: header,
		LargeTransactions: models.LargeTransactionSummary{
			Count:     largeCount,
			Amount:    aggregation.RoundCurrency(aggregation.SumBy(completed, large, models.Transaction.Volume)),
			Threshold: policy.LargeTransactionAmount,
		},
		StructuringSuspects: suspects,
		HighRiskCustomers:   highRisk,
		KYC: models.KYCSummary{
			Distribution:   countShares(kycLabels, kycCounts),
			CompletionRate: completion,
		},
		TotalAlerts: largeCount + len(suspects) + highRisk,
		Compliant:   completion.Compliant && len(suspects) == 0,
	}
}
