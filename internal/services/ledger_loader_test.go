package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"banking-reports/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type LedgerLoaderTestSuite struct {
	ledgerSuite
	registry *prometheus.Registry
	metrics  *PrometheusMetrics
}

func (s *LedgerLoaderTestSuite) SetupTest() {
	s.ledgerSuite.SetupTest()
	s.registry = prometheus.NewRegistry()
	s.metrics = NewPrometheusMetrics(s.registry)
	s.loader = NewLedgerLoader(s.readers(), nil, s.metrics)
}

func TestLedgerLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerLoaderTestSuite))
}

func (s *LedgerLoaderTestSuite) TestLoad_FillsEveryDestination() {
	ctx := context.Background()
	asOf := day(2024, time.March, 31)
	accounts := []models.Account{testAccount(models.AccountTypeChecking, "1000")}
	loans := []models.Loan{testLoan(models.LoanTypeAuto, "5000", models.LoanStatusActive, 0)}
	snapshot := &models.CashSnapshot{AsOf: asOf, Balance: amount("200")}

	accountQuery := models.AccountQuery{Types: []string{models.AccountTypeChecking}}
	loanQuery := models.LoanQuery{Types: []string{models.LoanTypeAuto}}
	s.mockAccounts.EXPECT().ListAccounts(gomock.Any(), accountQuery).Return(accounts, nil)
	s.mockLoans.EXPECT().ListLoans(gomock.Any(), loanQuery).Return(loans, nil)
	s.mockSnapshots.EXPECT().BalanceAsOf(gomock.Any(), asOf).Return(snapshot, nil)
	s.mockEmployees.EXPECT().CountActive(gomock.Any(), asOf).Return(int64(12), nil)

	var (
		gotAccounts []models.Account
		gotLoans    []models.Loan
		gotCash     *models.CashSnapshot
		headcount   int64
	)
	err := s.loader.Batch().
		Accounts(accountQuery, &gotAccounts).
		Loans(loanQuery, &gotLoans).
		CashBalance(asOf, &gotCash).
		Headcount(asOf, &headcount).
		Load(ctx)

	s.NoError(err)
	s.Equal(accounts, gotAccounts)
	s.Equal(loans, gotLoans)
	s.Equal(snapshot, gotCash)
	s.Equal(int64(12), headcount)
	s.Equal(0.0, testutil.ToFloat64(s.metrics.ledgerReadFailures.WithLabelValues("accounts")))
}

func (s *LedgerLoaderTestSuite) TestLoad_FailureWrapsEntity() {
	ctx := context.Background()
	readErr := errors.New("relation \"loans\" does not exist")
	s.mockAccounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockLoans.EXPECT().ListLoans(gomock.Any(), gomock.Any()).Return(nil, readErr)

	var accounts []models.Account
	var loans []models.Loan
	err := s.loader.Batch().
		Accounts(models.AccountQuery{}, &accounts).
		Loans(models.LoanQuery{}, &loans).
		Load(ctx)

	s.ErrorIs(err, ErrUpstreamRead)
	s.ErrorIs(err, readErr)
	s.Contains(err.Error(), "read loans")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ledgerReadFailures.WithLabelValues("loans")))
}

func (s *LedgerLoaderTestSuite) TestLoad_OpenBreakerSkipsReads() {
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})
	breaker.RecordFailure()
	loader := NewLedgerLoader(s.readers(), breaker, s.metrics)

	var customers []models.Customer
	err := loader.Batch().Customers(models.CustomerQuery{}, &customers).Load(context.Background())

	s.ErrorIs(err, ErrUpstreamRead)
	s.ErrorIs(err, ErrLedgerUnavailable)
	s.Nil(customers)
}

func (s *LedgerLoaderTestSuite) TestLoad_CancelledContextIsNotCounted() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.mockTransactions.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.TransactionQuery) ([]models.Transaction, error) {
			return nil, ctx.Err()
		})

	var rows []models.Transaction
	err := s.loader.Batch().Transactions(models.TransactionQuery{}, &rows).Load(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Equal(0.0, testutil.ToFloat64(s.metrics.ledgerReadFailures.WithLabelValues("transactions")))
}

func (s *LedgerLoaderTestSuite) TestLoad_TimeoutsKeepBreakerClosed() {
	breaker := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})
	loader := NewLedgerLoader(s.readers(), breaker, s.metrics)
	timeout := fmt.Errorf("query loans: %w", context.DeadlineExceeded)
	gomock.InOrder(
		s.mockLoans.EXPECT().ListLoans(gomock.Any(), gomock.Any()).Return(nil, timeout).Times(2),
		s.mockLoans.EXPECT().ListLoans(gomock.Any(), gomock.Any()).Return([]models.Loan{}, nil),
	)

	var loans []models.Loan
	for i := 0; i < 2; i++ {
		err := loader.Batch().Loans(models.LoanQuery{}, &loans).Load(context.Background())
		s.ErrorIs(err, context.DeadlineExceeded)
	}

	s.Equal(StateClosed, breaker.GetState())
	s.NoError(loader.Batch().Loans(models.LoanQuery{}, &loans).Load(context.Background()))
	s.Equal(0.0, testutil.ToFloat64(s.metrics.ledgerReadFailures.WithLabelValues("loans")))
}

func (s *LedgerLoaderTestSuite) TestHeadcount_SkippedWithoutEmployeeReader() {
	readers := s.readers()
	readers.Employees = nil
	loader := NewLedgerLoader(readers, nil, nil)

	headcount := int64(-1)
	err := loader.Batch().Headcount(day(2024, time.March, 31), &headcount).Load(context.Background())

	s.NoError(err)
	s.Equal(int64(-1), headcount)
}

func (s *LedgerLoaderTestSuite) TestBreakerStateRecorder() {
	hook := BreakerStateRecorder(s.metrics)
	hook(StateClosed, StateOpen)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.circuitBreakerState.WithLabelValues("ledger")))

	hook(StateOpen, StateHalfOpen)
	s.Equal(2.0, testutil.ToFloat64(s.metrics.circuitBreakerState.WithLabelValues("ledger")))

	s.NotPanics(func() { BreakerStateRecorder(nil)(StateClosed, StateOpen) })
}
