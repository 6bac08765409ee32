package services

import (
	"testing"
	"time"

	"banking-reports/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerGeneratorTestSuite struct {
	suite.Suite
	cfg LedgerGeneratorConfig
}

func (s *LedgerGeneratorTestSuite) SetupTest() {
	s.cfg = DefaultLedgerGeneratorConfig(day(2024, time.March, 31))
	s.cfg.Customers = 40
	s.cfg.TransactionsPerAccount = 10
	s.cfg.Employees = 6
}

func TestLedgerGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerGeneratorTestSuite))
}

func (s *LedgerGeneratorTestSuite) TestGenerate_DeterministicForSeed() {
	first := NewLedgerGenerator(42).Generate(s.cfg)
	second := NewLedgerGenerator(42).Generate(s.cfg)
	other := NewLedgerGenerator(7).Generate(s.cfg)

	s.Require().Len(second.Customers, len(first.Customers))
	s.Require().Len(second.Loans, len(first.Loans))
	for i := range first.Customers {
		s.Equal(first.Customers[i].ID, second.Customers[i].ID)
	}
	for i := range first.Loans {
		s.True(first.Loans[i].OutstandingBalance.Equal(second.Loans[i].OutstandingBalance))
	}
	s.NotEqual(first.Customers[0].ID, other.Customers[0].ID)
}

func (s *LedgerGeneratorTestSuite) TestGenerate_Counts() {
	fixture := NewLedgerGenerator(1).Generate(s.cfg)

	s.Len(fixture.Customers, s.cfg.Customers)
	s.Len(fixture.Employees, s.cfg.Employees)
	s.GreaterOrEqual(len(fixture.Accounts), s.cfg.Customers)
	s.LessOrEqual(len(fixture.Accounts), 3*s.cfg.Customers)
	s.LessOrEqual(len(fixture.Loans), s.cfg.Customers)
	s.Len(fixture.CashSnapshots, 13)
}

func (s *LedgerGeneratorTestSuite) TestGenerate_EmptyWindow() {
	testCases := []struct {
		name string
		cfg  LedgerGeneratorConfig
	}{
		{"zero end", LedgerGeneratorConfig{Customers: 5}},
		{"start after end", LedgerGeneratorConfig{Customers: 5, Start: day(2024, time.May, 1), End: day(2024, time.April, 1)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fixture := NewLedgerGenerator(3).Generate(tc.cfg)

			s.Empty(fixture.Customers)
			s.Empty(fixture.Accounts)
			s.Empty(fixture.CashSnapshots)
		})
	}
}

func (s *LedgerGeneratorTestSuite) TestGenerate_CustomersAndAccounts() {
	fixture := NewLedgerGenerator(5).Generate(s.cfg)

	customers := make(map[uuid.UUID]models.Customer, len(fixture.Customers))
	for _, c := range fixture.Customers {
		customers[c.ID] = c
		s.Contains(models.Segments, c.Segment)
		s.False(c.CreatedAt.After(s.cfg.End))
		if c.DateOfBirth != nil {
			s.False(c.DateOfBirth.After(s.cfg.End.AddDate(-minAdultAge, 0, 0)))
		}
	}

	for _, a := range fixture.Accounts {
		owner, ok := customers[a.CustomerID]
		s.Require().True(ok)
		s.Contains(models.AccountTypes, a.AccountType)
		s.False(a.Balance.IsNegative())
		if owner.ClosedAt != nil || a.ClosedAt != nil {
			s.Equal(models.AccountStatusClosed, a.Status)
			s.True(a.Balance.IsZero())
		}
	}
}

func (s *LedgerGeneratorTestSuite) TestGenerate_TransactionsInsideWindow() {
	fixture := NewLedgerGenerator(9).Generate(s.cfg)
	inflows := map[string]bool{}
	for _, k := range transactionKinds {
		inflows[k.kind] = k.inflow
	}
	last := s.cfg.End.Add(hoursInDay*time.Hour - time.Second)

	s.NotEmpty(fixture.Transactions)
	for _, tx := range fixture.Transactions {
		s.False(tx.OccurredAt.Before(s.cfg.Start))
		s.False(tx.OccurredAt.After(last))
		s.Equal(inflows[tx.TransactionType], tx.Amount.IsPositive(), tx.TransactionType)
		s.Contains(models.Channels, tx.Channel)
	}
}

func (s *LedgerGeneratorTestSuite) TestGenerate_LoansAreConsistent() {
	s.cfg.LoanRate = 1
	fixture := NewLedgerGenerator(11).Generate(s.cfg)

	s.Len(fixture.Loans, s.cfg.Customers)
	for _, l := range fixture.Loans {
		s.False(l.OutstandingBalance.IsNegative())
		s.True(l.OutstandingBalance.LessThanOrEqual(l.Principal))
		switch l.Status {
		case models.LoanStatusDefault:
			s.GreaterOrEqual(l.DaysPastDue, 90)
			s.NotNil(l.NPLClassifiedAt)
		case models.LoanStatusWrittenOff:
			s.True(l.OutstandingBalance.IsZero())
			s.True(l.WrittenOffAmount.Valid)
			s.NotNil(l.WrittenOffAt)
		case models.LoanStatusClosed:
			s.True(l.OutstandingBalance.Equal(decimal.Zero))
		case models.LoanStatusDelinquent:
			s.Less(l.DaysPastDue, 90)
		}
	}
}

func (s *LedgerGeneratorTestSuite) TestGenerate_SnapshotsAtMonthEnds() {
	s.cfg.LoanRate = 1
	fixture := NewLedgerGenerator(13).Generate(s.cfg)

	loans := make(map[uuid.UUID]models.Loan, len(fixture.Loans))
	for _, l := range fixture.Loans {
		loans[l.ID] = l
	}
	previous := map[uuid.UUID]int{}
	for _, snap := range fixture.LoanSnapshots {
		loan, ok := loans[snap.LoanID]
		s.Require().True(ok)
		s.Equal(1, snap.SnapshotDate.Add(time.Second).Day())
		s.False(snap.SnapshotDate.After(s.cfg.End.Add(hoursInDay*time.Hour)))
		s.False(snap.SnapshotDate.Before(loan.DisbursedAt))
		s.GreaterOrEqual(snap.DaysPastDue, 0)

		mob, seen := previous[snap.LoanID]
		if seen {
			s.Equal(mob+1, snap.MonthsOnBook)
		} else {
			s.Equal(0, snap.MonthsOnBook)
		}
		previous[snap.LoanID] = snap.MonthsOnBook
	}
}
