package services

import (
	"banking-reports/internal/aggregation"
	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// revenueInputs are the rows revenue is derived from. Transactions are the
// period's rows; loans and accounts are the book at period end.
type revenueInputs struct {
	transactions []models.Transaction
	loans        []models.Loan
	accounts     []models.Account
}

type incomeInputs struct {
	revenueInputs
	headcount int64
}

func computeRevenue(in revenueInputs, policy config.FinancialPolicy) models.RevenueLines {
	volume := aggregation.SumBy(in.transactions, models.Transaction.IsCompleted, models.Transaction.Volume)
	transactionFees := aggregation.RoundCurrency(volume.Mul(policy.TransactionFeeRate))

	interest := aggregation.SumBy(in.loans, models.Loan.IsPerforming, func(l models.Loan) decimal.Decimal {
		return l.OutstandingBalance.Mul(aggregation.OrZero(l.InterestRate)).Div(hundred).Div(monthsPerYear)
	})
	interestIncome := aggregation.RoundCurrency(interest)

	fees := aggregation.SumBy(in.accounts, models.Account.IsActive, func(a models.Account) decimal.Decimal {
		return policy.AccountFees[a.AccountType]
	})
	accountFees := aggregation.RoundCurrency(fees)

	otherIncome := aggregation.RoundCurrency(
		aggregation.Sum(interestIncome, transactionFees, accountFees).Mul(policy.OtherIncomeRate),
	)

	return models.RevenueLines{
		InterestIncome:  interestIncome,
		TransactionFees: transactionFees,
		AccountFees:     accountFees,
		OtherIncome:     otherIncome,
		Total:           aggregation.Sum(interestIncome, transactionFees, accountFees, otherIncome),
	}
}

// provisionable loans are those still accruing or past due but not yet in default.
func provisionable(l models.Loan) bool {
	return l.IsPerforming() || l.Status == models.LoanStatusDelinquent
}

func outstanding(l models.Loan) decimal.Decimal {
	return l.OutstandingBalance
}

func computeExpenses(revenue decimal.Decimal, in incomeInputs, policy config.FinancialPolicy) (models.ExpenseLines, string) {
	operating := aggregation.RoundCurrency(revenue.Mul(policy.OperatingExpenseRatio))
	other := aggregation.RoundCurrency(revenue.Mul(policy.OtherExpenseRatio))

	basis := models.PersonnelBasisRevenueRatio
	personnel := aggregation.RoundCurrency(revenue.Mul(policy.PersonnelExpenseRatio))
	if in.headcount > 0 {
		basis = models.PersonnelBasisHeadcount
		personnel = aggregation.RoundCurrency(decimal.NewFromInt(in.headcount).Mul(policy.AverageMonthlySalary))
	}

	provisions := aggregation.RoundCurrency(
		aggregation.SumBy(in.loans, provisionable, outstanding).Mul(policy.ProvisionRate),
	)

	return models.ExpenseLines{
		Operating:  operating,
		Personnel:  personnel,
		Provisions: provisions,
		Other:      other,
		Total:      aggregation.Sum(operating, personnel, provisions, other),
	}, basis
}

func buildIncomeStatement(header models.ReportHeader, in incomeInputs, policy config.FinancialPolicy) *models.IncomeStatement {
	revenue := computeRevenue(in.revenueInputs, policy)
	expenses, basis := computeExpenses(revenue.Total, in, policy)
	netIncome := revenue.Total.Sub(expenses.Total)

	return &models.IncomeStatement{
		ReportHeader:       header,
		Revenue:            revenue,
		Expenses:           expenses,
		NetIncome:          netIncome,
		PersonnelBasis:     basis,
		Headcount:          in.headcount,
		TransactionCount:   aggregation.CountBy(in.transactions, models.Transaction.IsCompleted),
		ActiveAccountCount: aggregation.CountBy(in.accounts, models.Account.IsActive),
		ActiveLoanCount:    aggregation.CountBy(in.loans, models.Loan.IsPerforming),
		Metrics: models.IncomeStatementMetrics{
			OperatingMargin: aggregation.Percent(revenue.Total.Sub(expenses.Operating).Sub(expenses.Personnel), revenue.Total),
			NetMargin:       aggregation.Percent(netIncome, revenue.Total),
			ExpenseRatio:    aggregation.Percent(expenses.Total, revenue.Total),
		},
	}
}

func fundingBalance(a models.Account) bool {
	return a.IsActive() && (a.AccountType == models.AccountTypeSavings || a.AccountType == models.AccountTypeTerm)
}

func accountBalance(a models.Account) decimal.Decimal {
	return a.Balance
}

func buildProfitAndLoss(header models.ReportHeader, in incomeInputs, policy config.FinancialPolicy) *models.ProfitAndLoss {
	revenue := computeRevenue(in.revenueInputs, policy)
	expenses, _ := computeExpenses(revenue.Total, in, policy)

	costOfFunds := aggregation.RoundCurrency(
		aggregation.SumBy(in.accounts, fundingBalance, accountBalance).Mul(policy.DepositRate).Div(monthsPerYear),
	)
	grossProfit := revenue.Total.Sub(costOfFunds)
	operatingProfit := grossProfit.Sub(expenses.Operating).Sub(expenses.Personnel)
	profitBeforeTax := operatingProfit.Sub(expenses.Provisions).Sub(expenses.Other)
	tax := aggregation.RoundCurrency(aggregation.MaxZero(profitBeforeTax).Mul(policy.TaxRate))
	netProfit := profitBeforeTax.Sub(tax)

	return &models.ProfitAndLoss{
		ReportHeader:     header,
		Revenue:          revenue,
		CostOfFunds:      costOfFunds,
		GrossProfit:      grossProfit,
		OperatingExpense: expenses.Operating,
		PersonnelExpense: expenses.Personnel,
		OperatingProfit:  operatingProfit,
		Provisions:       expenses.Provisions,
		OtherExpense:     expenses.Other,
		ProfitBeforeTax:  profitBeforeTax,
		Tax:              tax,
		NetProfit:        netProfit,
		Metrics: models.ProfitLossMetrics{
			GrossMargin:     aggregation.Percent(grossProfit, revenue.Total),
			OperatingMargin: aggregation.Percent(operatingProfit, revenue.Total),
			NetMargin:       aggregation.Percent(netProfit, revenue.Total),
		},
	}
}

func varianceLine(line, category string, actual, budget decimal.Decimal) models.VarianceLine {
	variance := actual.Sub(budget)
	favorable := !variance.IsNegative()
	if category == models.VarianceCategoryExpense {
		favorable = !variance.IsPositive()
	}
	return models.VarianceLine{
		Line:            line,
		Category:        category,
		Actual:          actual,
		Budget:          budget,
		Variance:        variance,
		VariancePercent: aggregation.Percent(variance, budget),
		Favorable:       favorable,
	}
}

// buildBudgetVariance compares the income statement with a budget derived
// from it by fixed multipliers.
func buildBudgetVariance(header models.ReportHeader, statement *models.IncomeStatement, multipliers config.BudgetMultipliers) *models.BudgetVariance {
	budget := func(actual, multiplier decimal.Decimal) decimal.Decimal {
		return aggregation.RoundCurrency(actual.Mul(multiplier))
	}

	rev, exp := statement.Revenue, statement.Expenses
	lines := []models.VarianceLine{
		varianceLine("interest_income", models.VarianceCategoryRevenue, rev.InterestIncome, budget(rev.InterestIncome, multipliers.InterestIncome)),
		varianceLine("transaction_fees", models.VarianceCategoryRevenue, rev.TransactionFees, budget(rev.TransactionFees, multipliers.TransactionFees)),
		varianceLine("account_fees", models.VarianceCategoryRevenue, rev.AccountFees, budget(rev.AccountFees, multipliers.AccountFees)),
		varianceLine("other_income", models.VarianceCategoryRevenue, rev.OtherIncome, budget(rev.OtherIncome, multipliers.OtherIncome)),
		varianceLine("operating_expense", models.VarianceCategoryExpense, exp.Operating, budget(exp.Operating, multipliers.OperatingExpense)),
		varianceLine("personnel_expense", models.VarianceCategoryExpense, exp.Personnel, budget(exp.Personnel, multipliers.PersonnelExpense)),
		varianceLine("provisions", models.VarianceCategoryExpense, exp.Provisions, budget(exp.Provisions, multipliers.Provisions)),
		varianceLine("other_expense", models.VarianceCategoryExpense, exp.Other, budget(exp.Other, multipliers.OtherExpense)),
	}

	var revActual, revBudget, expActual, expBudget decimal.Decimal
	for _, line := range lines {
		if line.Category == models.VarianceCategoryRevenue {
			revActual = revActual.Add(line.Actual)
			revBudget = revBudget.Add(line.Budget)
		} else {
			expActual = expActual.Add(line.Actual)
			expBudget = expBudget.Add(line.Budget)
		}
	}

	return &models.BudgetVariance{
		ReportHeader: header,
		Lines:        lines,
		Revenue:      varianceLine("total_revenue", models.VarianceCategoryRevenue, revActual, revBudget),
		Expenses:     varianceLine("total_expenses", models.VarianceCategoryExpense, expActual, expBudget),
		NetIncome:    varianceLine("net_income", models.VarianceCategoryRevenue, revActual.Sub(expActual), revBudget.Sub(expBudget)),
	}
}
