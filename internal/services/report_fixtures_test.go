package services

import (
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/models"
	"banking-reports/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ledgerSuite holds the mocked ledger readers shared by the report service suites.
type ledgerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAccounts     *repository_mocks.MockAccountReaderInterface
	mockTransactions *repository_mocks.MockTransactionReaderInterface
	mockLoans        *repository_mocks.MockLoanReaderInterface
	mockCustomers    *repository_mocks.MockCustomerReaderInterface
	mockSnapshots    *repository_mocks.MockSnapshotReaderInterface
	mockEmployees    *repository_mocks.MockEmployeeReaderInterface
	policy           *config.Policy
	loader           *LedgerLoader
}

func (s *ledgerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccounts = repository_mocks.NewMockAccountReaderInterface(s.ctrl)
	s.mockTransactions = repository_mocks.NewMockTransactionReaderInterface(s.ctrl)
	s.mockLoans = repository_mocks.NewMockLoanReaderInterface(s.ctrl)
	s.mockCustomers = repository_mocks.NewMockCustomerReaderInterface(s.ctrl)
	s.mockSnapshots = repository_mocks.NewMockSnapshotReaderInterface(s.ctrl)
	s.mockEmployees = repository_mocks.NewMockEmployeeReaderInterface(s.ctrl)
	s.policy = config.DefaultPolicy()
	s.loader = NewLedgerLoader(s.readers(), nil, nil)
}

func (s *ledgerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ledgerSuite) readers() LedgerReaders {
	return LedgerReaders{
		Accounts:     s.mockAccounts,
		Transactions: s.mockTransactions,
		Loans:        s.mockLoans,
		Customers:    s.mockCustomers,
		Snapshots:    s.mockSnapshots,
		Employees:    s.mockEmployees,
	}
}

// emptyLedger lets every read succeed with no rows.
func (s *ledgerSuite) emptyLedger() {
	s.mockAccounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockTransactions.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockLoans.EXPECT().ListLoans(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockCustomers.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockSnapshots.EXPECT().ListSnapshots(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockSnapshots.EXPECT().BalanceAsOf(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockEmployees.EXPECT().CountActive(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func nullDecimal(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func quarterRequest(domain models.Domain, reportType models.ReportType) models.ReportRequest {
	return models.ReportRequest{
		Domain:     domain,
		ReportType: reportType,
		Period:     models.Period{StartDate: day(2024, time.January, 1), EndDate: day(2024, time.March, 31)},
	}
}

func testHeader(reportType models.ReportType) models.ReportHeader {
	return models.ReportHeader{Type: reportType, GeneratedAt: day(2024, time.April, 1)}
}

func testAccount(accountType, balance string) models.Account {
	return models.Account{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		AccountType: accountType,
		Balance:     amount(balance),
		Status:      models.AccountStatusActive,
		OpenedAt:    day(2023, time.January, 1),
	}
}

func testLoan(loanType, outstanding string, status string, dpd int) models.Loan {
	return models.Loan{
		ID:                 uuid.New(),
		CustomerID:         uuid.New(),
		LoanType:           loanType,
		Principal:          amount(outstanding),
		OutstandingBalance: amount(outstanding),
		InterestRate:       nullDecimal("12"),
		Status:             status,
		DisbursedAt:        day(2023, time.June, 1),
		DaysPastDue:        dpd,
	}
}

func testTransaction(accountID uuid.UUID, transactionType, value string, at time.Time) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		Amount:          amount(value),
		TransactionType: transactionType,
		Channel:         models.ChannelOnline,
		Status:          models.TransactionStatusCompleted,
		OccurredAt:      at,
	}
}

func testCustomer(segment string, createdAt time.Time) models.Customer {
	return models.Customer{
		ID:        uuid.New(),
		Segment:   segment,
		KYCStatus: models.KYCStatusVerified,
		CreatedAt: createdAt,
	}
}

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// equalAmount compares decimals by value so differing exponents do not matter.
func (s *ledgerSuite) equalAmount(expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	s.T().Helper()
	s.True(amount(expected).Equal(actual), append([]interface{}{"expected %s, got %s", expected, actual.String()}, msgAndArgs...)...)
}

func countPercentTotal(shares []models.CountShare) decimal.Decimal {
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Percent)
	}
	return total
}

func amountPercentTotal(shares []models.AmountShare) decimal.Decimal {
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Percent)
	}
	return total
}

func shareByLabel(shares []models.AmountShare, label string) models.AmountShare {
	for _, share := range shares {
		if share.Label == label {
			return share
		}
	}
	return models.AmountShare{}
}
