package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"banking-reports/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type FinancialReportTestSuite struct {
	ledgerSuite
	service FinancialReportServiceInterface
}

func (s *FinancialReportTestSuite) SetupTest() {
	s.ledgerSuite.SetupTest()
	s.service = NewFinancialReportService(s.loader, s.policy)
}

func TestFinancialReportTestSuite(t *testing.T) {
	suite.Run(t, new(FinancialReportTestSuite))
}

func (s *FinancialReportTestSuite) TestIncomeStatement_EmptyLedger() {
	statement := buildIncomeStatement(testHeader(models.ReportIncomeStatement), incomeInputs{}, s.policy.Financial)

	s.True(statement.Revenue.Total.IsZero())
	s.True(statement.Expenses.Total.IsZero())
	s.True(statement.NetIncome.IsZero())
	s.True(statement.Metrics.NetMargin.IsZero())
	s.True(statement.Metrics.ExpenseRatio.IsZero())
	s.Equal(models.PersonnelBasisRevenueRatio, statement.PersonnelBasis)
	s.Equal(0, statement.TransactionCount)
}

func (s *FinancialReportTestSuite) TestIncomeStatement_MonthlyInterest() {
	in := incomeInputs{revenueInputs: revenueInputs{
		loans: []models.Loan{testLoan(models.LoanTypePersonal, "120000", models.LoanStatusActive, 0)},
	}}

	statement := buildIncomeStatement(testHeader(models.ReportIncomeStatement), in, s.policy.Financial)

	s.equalAmount("1200", statement.Revenue.InterestIncome)
	s.equalAmount("60", statement.Revenue.OtherIncome)
	s.equalAmount("1260", statement.Revenue.Total)
	s.equalAmount("2400", statement.Expenses.Provisions)
	s.equalAmount("3219", statement.Expenses.Total)
	s.equalAmount("-1959", statement.NetIncome)
	s.Equal(1, statement.ActiveLoanCount)
}

func (s *FinancialReportTestSuite) TestIncomeStatement_SkipsNonPerformingInterest() {
	in := incomeInputs{revenueInputs: revenueInputs{
		loans: []models.Loan{
			testLoan(models.LoanTypePersonal, "120000", models.LoanStatusDefault, 120),
			testLoan(models.LoanTypeAuto, "60000", models.LoanStatusDelinquent, 30),
		},
	}}

	statement := buildIncomeStatement(testHeader(models.ReportIncomeStatement), in, s.policy.Financial)

	s.True(statement.Revenue.InterestIncome.IsZero())
	s.equalAmount("1200", statement.Expenses.Provisions)
}

func (s *FinancialReportTestSuite) TestIncomeStatement_HeadcountDrivesPersonnel() {
	in := incomeInputs{headcount: 3}

	statement := buildIncomeStatement(testHeader(models.ReportIncomeStatement), in, s.policy.Financial)

	s.Equal(models.PersonnelBasisHeadcount, statement.PersonnelBasis)
	s.equalAmount("36000", statement.Expenses.Personnel)
}

func (s *FinancialReportTestSuite) TestIncomeStatement_FeesFromCompletedTransactions() {
	account := testAccount(models.AccountTypeChecking, "5000")
	failed := testTransaction(account.ID, "payment", "-10000", day(2024, time.February, 2))
	failed.Status = models.TransactionStatusFailed
	in := incomeInputs{revenueInputs: revenueInputs{
		accounts: []models.Account{account},
		transactions: []models.Transaction{
			testTransaction(account.ID, "deposit", "2000", day(2024, time.February, 1)),
			failed,
		},
	}}

	statement := buildIncomeStatement(testHeader(models.ReportIncomeStatement), in, s.policy.Financial)

	s.equalAmount("30", statement.Revenue.TransactionFees)
	s.equalAmount("15", statement.Revenue.AccountFees)
	s.Equal(1, statement.TransactionCount)
}

func (s *FinancialReportTestSuite) TestBalanceSheet_CashAndIdentity() {
	asOf := day(2024, time.March, 31)
	accounts := []models.Account{testAccount(models.AccountTypeChecking, "100000")}

	sheet := buildBalanceSheet(testHeader(models.ReportBalanceSheet), asOf, accounts, nil, s.policy.Financial)

	s.equalAmount("20000", sheet.Assets.Cash)
	s.equalAmount("100000", sheet.Liabilities.Deposits)
	s.True(sheet.Assets.Total.Equal(sheet.Liabilities.Total.Add(sheet.TotalEquity)))
	s.equalAmount("100000", lineAmount(sheet.DepositsByType, models.AccountTypeChecking))
}

func (s *FinancialReportTestSuite) TestBalanceSheet_InvestmentsAboveThreshold() {
	asOf := day(2024, time.March, 31)
	accounts := []models.Account{
		testAccount(models.AccountTypeSavings, "80000"),
		testAccount(models.AccountTypeSavings, "50000"),
	}
	loans := []models.Loan{
		testLoan(models.LoanTypeMortgage, "300000", models.LoanStatusActive, 0),
		testLoan(models.LoanTypeAuto, "40000", models.LoanStatusDelinquent, 45),
	}

	sheet := buildBalanceSheet(testHeader(models.ReportBalanceSheet), asOf, accounts, loans, s.policy.Financial)

	s.equalAmount("56000", sheet.Assets.Investments)
	s.equalAmount("300000", sheet.Assets.Loans)
	s.equalAmount("300000", lineAmount(sheet.LoansByType, models.LoanTypeMortgage))
	s.True(lineAmount(sheet.LoansByType, models.LoanTypeAuto).IsZero())
	s.True(sheet.Assets.Total.Equal(sheet.Liabilities.Total.Add(sheet.TotalEquity)))
}

func (s *FinancialReportTestSuite) TestClassifyCashFlow() {
	testCases := []struct {
		transactionType string
		expected        string
	}{
		{"deposit", cashFlowOperating},
		{"Investment", cashFlowInvesting},
		{" dividend_received ", cashFlowInvesting},
		{"loan_repayment", cashFlowFinancing},
		{"borrowing", cashFlowFinancing},
		{"", cashFlowOperating},
	}

	for _, tc := range testCases {
		s.Run(tc.transactionType, func() {
			s.Equal(tc.expected, classifyCashFlow(tc.transactionType, s.policy.Financial))
		})
	}
}

func (s *FinancialReportTestSuite) TestCashFlow_ReconcilesWithSnapshot() {
	account := testAccount(models.AccountTypeChecking, "0")
	rows := []models.Transaction{
		testTransaction(account.ID, "deposit", "1000", day(2024, time.March, 3)),
		testTransaction(account.ID, "withdrawal", "-400", day(2024, time.March, 4)),
		testTransaction(account.ID, "investment", "-300", day(2024, time.March, 5)),
		testTransaction(account.ID, "loan_repayment", "200", day(2024, time.March, 6)),
	}
	in := cashFlowInputs{
		transactions: rows,
		trend:        rows,
		opening:      &models.CashSnapshot{Balance: amount("5000")},
		closing:      &models.CashSnapshot{Balance: amount("5500")},
		end:          day(2024, time.March, 31),
	}

	flow := buildCashFlow(testHeader(models.ReportCashFlow), in, s.policy.Financial)

	s.equalAmount("600", flow.Operating.Net)
	s.equalAmount("-300", flow.Investing.Net)
	s.equalAmount("200", flow.Financing.Net)
	s.equalAmount("500", flow.NetCashFlow)
	s.equalAmount("5500", flow.ClosingBalance)
	s.True(flow.Reconciliation.SnapshotAvailable)
	s.True(flow.Reconciliation.Reconciled)
	s.Len(flow.Trend, s.policy.Financial.CashFlowTrendMonths)
	s.equalAmount("500", flow.Trend[len(flow.Trend)-1].Net)
}

func (s *FinancialReportTestSuite) TestCashFlow_NoSnapshots() {
	flow := buildCashFlow(testHeader(models.ReportCashFlow), cashFlowInputs{end: day(2024, time.March, 31)}, s.policy.Financial)

	s.True(flow.OpeningBalance.IsZero())
	s.False(flow.Reconciliation.SnapshotAvailable)
	s.False(flow.Reconciliation.Reconciled)
}

func (s *FinancialReportTestSuite) TestBudgetVariance_Favorability() {
	in := incomeInputs{revenueInputs: revenueInputs{
		loans: []models.Loan{testLoan(models.LoanTypePersonal, "120000", models.LoanStatusActive, 0)},
	}}
	statement := buildIncomeStatement(testHeader(models.ReportIncomeStatement), in, s.policy.Financial)

	report := buildBudgetVariance(testHeader(models.ReportBudgetVariance), statement, s.policy.Financial.BudgetMultipliers)

	s.Len(report.Lines, 8)
	interest := report.Lines[0]
	s.Equal("interest_income", interest.Line)
	s.equalAmount("1140", interest.Budget)
	s.equalAmount("60", interest.Variance)
	s.equalAmount("5.26", interest.VariancePercent)
	s.True(interest.Favorable)

	provisions := report.Lines[6]
	s.Equal("provisions", provisions.Line)
	s.equalAmount("2280", provisions.Budget)
	s.False(provisions.Favorable)
}

func (s *FinancialReportTestSuite) TestIncomeStatement_ReadsLedger() {
	ctx := context.Background()
	req := quarterRequest(models.DomainFinancial, models.ReportIncomeStatement)
	loan := testLoan(models.LoanTypePersonal, "120000", models.LoanStatusActive, 0)

	s.mockTransactions.EXPECT().ListTransactions(gomock.Any(), periodQuery(req, models.TransactionStatusCompleted)).Return(nil, nil)
	s.mockLoans.EXPECT().ListLoans(gomock.Any(), bookQuery(req)).Return([]models.Loan{loan}, nil)
	s.mockAccounts.EXPECT().ListAccounts(gomock.Any(), depositQuery(req)).Return(nil, nil)
	s.mockEmployees.EXPECT().CountActive(gomock.Any(), req.Period.EndOfDay()).Return(int64(0), nil)

	statement, err := s.service.IncomeStatement(ctx, req)

	s.NoError(err)
	s.Equal(models.ReportIncomeStatement, statement.Type)
	s.Equal(models.DomainFinancial, statement.Domain)
	s.Equal(models.BasisPolicySimulation, statement.Basis)
	s.equalAmount("1200", statement.Revenue.InterestIncome)
}

func (s *FinancialReportTestSuite) TestBalanceSheet_ReadFailure() {
	ctx := context.Background()
	req := quarterRequest(models.DomainFinancial, models.ReportBalanceSheet)
	readErr := errors.New("timeout")

	s.mockAccounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, readErr)
	s.mockLoans.EXPECT().ListLoans(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	sheet, err := s.service.BalanceSheet(ctx, req)

	s.Nil(sheet)
	s.ErrorIs(err, ErrUpstreamRead)
	s.ErrorIs(err, readErr)
	s.Contains(err.Error(), string(models.ReportBalanceSheet))
}

func (s *FinancialReportTestSuite) TestCashFlow_ReadsSnapshotsAtBothEnds() {
	ctx := context.Background()
	req := quarterRequest(models.DomainFinancial, models.ReportCashFlow)

	s.mockTransactions.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	s.mockSnapshots.EXPECT().BalanceAsOf(gomock.Any(), req.Period.StartDate).Return(&models.CashSnapshot{Balance: amount("900")}, nil)
	s.mockSnapshots.EXPECT().BalanceAsOf(gomock.Any(), req.Period.EndOfDay()).Return(&models.CashSnapshot{Balance: amount("900")}, nil)

	flow, err := s.service.CashFlow(ctx, req)

	s.NoError(err)
	s.Empty(flow.Basis)
	s.equalAmount("900", flow.OpeningBalance)
	s.True(flow.Reconciliation.Reconciled)
}
