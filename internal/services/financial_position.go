package services

import (
	"strings"
	"time"

	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

// buildBalanceSheet derives the position at asOf. Every line is rounded once,
// totals add rounded lines and equity is the balancing figure.
func buildBalanceSheet(header models.ReportHeader, asOf time.Time, accounts []models.Account, loans []models.Loan, policy config.FinancialPolicy) *models.BalanceSheet {
	activeAccounts := aggregation.Filter(accounts, func(a models.Account) bool {
		return a.IsActive() && !a.OpenedAt.After(asOf)
	})
	bookLoans := aggregation.Filter(loans, func(l models.Loan) bool {
		return l.IsPerforming() && !l.DisbursedAt.After(asOf)
	})

	ofType := func(accountType string) func(models.Account) bool {
		return func(a models.Account) bool { return a.AccountType == accountType }
	}

	cash := aggregation.RoundCurrency(
		aggregation.SumBy(activeAccounts, ofType(models.AccountTypeChecking), accountBalance).Mul(policy.CashShareOfChecking),
	)
	investments := aggregation.RoundCurrency(
		aggregation.SumBy(activeAccounts, func(a models.Account) bool {
			return a.AccountType == models.AccountTypeSavings && a.Balance.GreaterThan(policy.InvestmentThreshold)
		}, accountBalance).Mul(policy.InvestmentShareOfSavings),
	)

	loansByType := make([]models.LineItem, 0, len(models.LoanTypes))
	loanTotal := decimal.Zero
	for _, loanType := range models.LoanTypes {
		amount := aggregation.RoundCurrency(aggregation.SumBy(bookLoans, func(l models.Loan) bool {
			return l.LoanType == loanType
		}, outstanding))
		loansByType = append(loansByType, models.LineItem{Label: loanType, Amount: amount})
		loanTotal = loanTotal.Add(amount)
	}

	depositsByType := make([]models.LineItem, 0, len(models.AccountTypes))
	deposits := decimal.Zero
	for _, accountType := range models.AccountTypes {
		amount := aggregation.RoundCurrency(aggregation.SumBy(activeAccounts, ofType(accountType), accountBalance))
		depositsByType = append(depositsByType, models.LineItem{Label: accountType, Amount: amount})
		deposits = deposits.Add(amount)
	}

	earningBase := cash.Add(loanTotal)
	fixedAssets := aggregation.RoundCurrency(earningBase.Mul(policy.FixedAssetRate))
	otherAssets := aggregation.RoundCurrency(earningBase.Mul(policy.OtherAssetRate))
	totalAssets := aggregation.Sum(cash, loanTotal, investments, fixedAssets, otherAssets)

	borrowings := aggregation.RoundCurrency(loanTotal.Mul(policy.BorrowingsRate))
	otherLiabilities := aggregation.RoundCurrency(deposits.Mul(policy.OtherLiabilitiesRate))
	totalLiabilities := aggregation.Sum(deposits, borrowings, otherLiabilities)

	equity := totalAssets.Sub(totalLiabilities)

	return &models.BalanceSheet{
		ReportHeader: header,
		AsOf:         asOf,
		Assets: models.AssetLines{
			Cash:        cash,
			Loans:       loanTotal,
			Investments: investments,
			FixedAssets: fixedAssets,
			OtherAssets: otherAssets,
			Total:       totalAssets,
		},
		Liabilities: models.LiabilityLines{
			Deposits:         deposits,
			Borrowings:       borrowings,
			OtherLiabilities: otherLiabilities,
			Total:            totalLiabilities,
		},
		TotalEquity:    equity,
		DepositsByType: depositsByType,
		LoansByType:    loansByType,
		Metrics: models.BalanceSheetMetrics{
			DebtToEquity: aggregation.RoundRatio(aggregation.SafeRatio(totalLiabilities, equity)),
			CurrentRatio: aggregation.RoundRatio(aggregation.SafeRatio(
				aggregation.Sum(cash, investments, otherAssets),
				deposits.Add(otherLiabilities),
			)),
			EquityRatio: aggregation.Percent(equity, totalAssets),
		},
	}
}

// lineAmount returns the amount of the labelled line, zero when absent.
func lineAmount(items []models.LineItem, label string) decimal.Decimal {
	for _, item := range items {
		if item.Label == label {
			return item.Amount
		}
	}
	return decimal.Zero
}

const (
	cashFlowOperating = "operating"
	cashFlowInvesting = "investing"
	cashFlowFinancing = "financing"
)

// classifyCashFlow maps a transaction type onto exactly one activity.
// Unlisted types are operating.
func classifyCashFlow(transactionType string, policy config.FinancialPolicy) string {
	key := strings.ToLower(strings.TrimSpace(transactionType))
	for _, keyword := range policy.FinancingKeywords {
		if key == strings.ToLower(keyword) {
			return cashFlowFinancing
		}
	}
	for _, keyword := range policy.InvestingKeywords {
		if key == strings.ToLower(keyword) {
			return cashFlowInvesting
		}
	}
	return cashFlowOperating
}

func inflow(t models.Transaction) bool {
	return t.Amount.IsPositive()
}

func outflow(t models.Transaction) bool {
	return t.Amount.IsNegative()
}

func cashFlowSection(rows []models.Transaction) models.CashFlowSection {
	inflows := aggregation.RoundCurrency(aggregation.SumBy(rows, inflow, models.Transaction.Volume))
	outflows := aggregation.RoundCurrency(aggregation.SumBy(rows, outflow, models.Transaction.Volume))
	return models.CashFlowSection{
		Inflows:          inflows,
		Outflows:         outflows,
		Net:              inflows.Sub(outflows),
		TransactionCount: len(rows),
	}
}

type cashFlowInputs struct {
	transactions []models.Transaction
	trend        []models.Transaction
	opening      *models.CashSnapshot
	closing      *models.CashSnapshot
	end          time.Time
}

func buildCashFlow(header models.ReportHeader, in cashFlowInputs, policy config.FinancialPolicy) *models.CashFlowStatement {
	completed := aggregation.Filter(in.transactions, models.Transaction.IsCompleted)
	groups := aggregation.GroupBy(completed, func(t models.Transaction) string {
		return classifyCashFlow(t.TransactionType, policy)
	})

	operating := cashFlowSection(groups.Get(cashFlowOperating))
	investing := cashFlowSection(groups.Get(cashFlowInvesting))
	financing := cashFlowSection(groups.Get(cashFlowFinancing))
	net := aggregation.Sum(operating.Net, investing.Net, financing.Net)

	opening := decimal.Zero
	if in.opening != nil {
		opening = aggregation.RoundCurrency(in.opening.Balance)
	}
	closing := opening.Add(net)

	reconciliation := models.CashReconciliation{}
	if in.closing != nil {
		reported := aggregation.RoundCurrency(in.closing.Balance)
		difference := reported.Sub(closing)
		reconciliation = models.CashReconciliation{
			SnapshotAvailable:      true,
			ReportedClosingBalance: reported,
			Difference:             difference,
			Reconciled:             difference.IsZero(),
		}
	}

	trendRows := aggregation.Filter(in.trend, models.Transaction.IsCompleted)
	buckets := aggregation.BucketByTrailingPeriod(trendRows, func(t models.Transaction) time.Time {
		return t.OccurredAt
	}, aggregation.UnitMonth, policy.CashFlowTrendMonths, in.end)

	trend := make([]models.CashFlowTrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		section := cashFlowSection(bucket.Rows)
		trend = append(trend, models.CashFlowTrendPoint{
			Period:   bucket.Label,
			Inflows:  section.Inflows,
			Outflows: section.Outflows,
			Net:      section.Net,
		})
	}

	return &models.CashFlowStatement{
		ReportHeader:   header,
		Operating:      operating,
		Investing:      investing,
		Financing:      financing,
		NetCashFlow:    net,
		OpeningBalance: opening,
		ClosingBalance: closing,
		Reconciliation: reconciliation,
		Trend:          trend,
	}
}

// trendWindowStart is the first instant of the oldest month of the cash flow trend.
func trendWindowStart(end time.Time, months int) time.Time {
	if months < 1 {
		months = 1
	}
	return aggregation.PeriodStart(end, aggregation.UnitMonth).AddDate(0, -(months - 1), 0)
}
