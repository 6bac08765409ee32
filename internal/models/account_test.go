package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name:    "valid checking account",
			account: Account{AccountType: AccountTypeChecking, Status: AccountStatusActive},
		},
		{
			name:    "valid dormant term account",
			account: Account{AccountType: AccountTypeTerm, Status: AccountStatusDormant},
		},
		{
			name:    "unknown account type",
			account: Account{AccountType: "money_market", Status: AccountStatusActive},
			wantErr: ErrInvalidAccountType,
		},
		{
			name:    "unknown status",
			account: Account{AccountType: AccountTypeSavings, Status: "frozen"},
			wantErr: ErrInvalidAccountStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAccount_IsActive(t *testing.T) {
	assert.True(t, Account{Status: AccountStatusActive}.IsActive())
	assert.True(t, Account{Status: AccountStatusDormant}.IsActive())
	assert.False(t, Account{Status: AccountStatusInactive}.IsActive())
	assert.False(t, Account{Status: AccountStatusClosed}.IsActive())
}

func TestAccount_OpenAt(t *testing.T) {
	opened := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	account := Account{OpenedAt: opened, ClosedAt: &closed}

	assert.False(t, account.OpenAt(opened.AddDate(0, 0, -1)))
	assert.True(t, account.OpenAt(opened))
	assert.True(t, account.OpenAt(closed.Add(-time.Second)))
	assert.False(t, account.OpenAt(closed))
}

func TestLoan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		loan    Loan
		wantErr error
	}{
		{
			name: "valid performing loan",
			loan: Loan{LoanType: LoanTypeMortgage, Status: LoanStatusActive, Principal: decimal.NewFromInt(1000), OutstandingBalance: decimal.NewFromInt(900)},
		},
		{
			name:    "outstanding above principal",
			loan:    Loan{LoanType: LoanTypeAuto, Status: LoanStatusDisbursed, Principal: decimal.NewFromInt(1000), OutstandingBalance: decimal.NewFromInt(1001)},
			wantErr: ErrOutstandingExceeds,
		},
		{
			name:    "active loan with arrears",
			loan:    Loan{LoanType: LoanTypePersonal, Status: LoanStatusActive, Principal: decimal.NewFromInt(10), DaysPastDue: 5},
			wantErr: ErrActiveLoanPastDue,
		},
		{
			name:    "unknown type",
			loan:    Loan{LoanType: "boat", Status: LoanStatusActive},
			wantErr: ErrInvalidLoanType,
		},
		{
			name:    "unknown status",
			loan:    Loan{LoanType: LoanTypeBusiness, Status: "restructured"},
			wantErr: ErrInvalidLoanStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loan.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoan_Classification(t *testing.T) {
	assert.True(t, Loan{Status: LoanStatusActive}.IsPerforming())
	assert.True(t, Loan{Status: LoanStatusDelinquent}.IsOnBook())
	assert.False(t, Loan{Status: LoanStatusClosed}.IsOnBook())

	assert.True(t, Loan{Status: LoanStatusDelinquent, DaysPastDue: 91}.IsNonPerforming(90))
	assert.False(t, Loan{Status: LoanStatusDelinquent, DaysPastDue: 90}.IsNonPerforming(90))
	assert.True(t, Loan{Status: LoanStatusDefault}.IsNonPerforming(90))
	assert.True(t, Loan{Status: LoanStatusWrittenOff}.IsNonPerforming(90))
}

func TestCustomer_Rating(t *testing.T) {
	assert.Equal(t, RiskRatingHigh, Customer{RiskRating: RiskRatingHigh}.Rating())
	assert.Equal(t, RiskRatingUnrated, Customer{}.Rating())
	assert.Equal(t, RiskRatingUnrated, Customer{RiskRating: "EXTREME"}.Rating())
}

func TestPeriod_EndOfDay(t *testing.T) {
	p := Period{
		StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	end := p.EndOfDay()

	assert.Equal(t, 31, end.Day())
	assert.True(t, end.Before(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, p.EndDate, p.AsOf())
}

func TestRatioChecks(t *testing.T) {
	assert.True(t, NewRatioCheck(decimal.NewFromInt(8), decimal.NewFromInt(8)).Compliant)
	assert.False(t, NewRatioCheck(decimal.RequireFromString("7.99"), decimal.NewFromInt(8)).Compliant)
	assert.True(t, NewRatioCeiling(decimal.NewFromInt(90), decimal.NewFromInt(90)).Compliant)
	assert.False(t, NewRatioCeiling(decimal.RequireFromString("90.01"), decimal.NewFromInt(90)).Compliant)
}

func TestReportHeader_ImplementsDocument(t *testing.T) {
	var doc ReportDocument = &IncomeStatement{ReportHeader: ReportHeader{Type: ReportIncomeStatement, Domain: DomainFinancial}}

	assert.Equal(t, ReportIncomeStatement, doc.ReportType())
	assert.Equal(t, DomainFinancial, doc.Header().Domain)
}
