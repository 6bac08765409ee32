package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LoanTypePersonal  = "personal"
	LoanTypeMortgage  = "mortgage"
	LoanTypeAuto      = "auto"
	LoanTypeBusiness  = "business"
	LoanTypeCorporate = "corporate"

	LoanStatusActive     = "active"
	LoanStatusDisbursed  = "disbursed"
	LoanStatusDelinquent = "delinquent"
	LoanStatusDefault    = "default"
	LoanStatusWrittenOff = "written_off"
	LoanStatusClosed     = "closed"
)

var (
	ErrInvalidLoanType    = errors.New("invalid loan type")
	ErrInvalidLoanStatus  = errors.New("invalid loan status")
	ErrOutstandingExceeds = errors.New("outstanding balance exceeds principal")
	ErrActiveLoanPastDue  = errors.New("active loan cannot be past due")
)

// LoanTypes lists loan products in reporting order.
var LoanTypes = []string{LoanTypePersonal, LoanTypeMortgage, LoanTypeAuto, LoanTypeBusiness, LoanTypeCorporate}

// Loan is a credit facility row. InterestRate is an annual percentage.
type Loan struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID         uuid.UUID           `gorm:"type:uuid;not null;index" json:"customer_id"`
	LoanType           string              `gorm:"type:varchar(20);not null;index" json:"loan_type"`
	Principal          decimal.Decimal     `gorm:"type:decimal(18,2);not null" json:"principal"`
	OutstandingBalance decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0" json:"outstanding_balance"`
	InterestRate       decimal.NullDecimal `gorm:"type:decimal(7,4)" json:"interest_rate"`
	Status             string              `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	DisbursedAt        time.Time           `gorm:"not null;index" json:"disbursed_at"`
	DaysPastDue        int                 `gorm:"not null;default:0" json:"days_past_due"`
	NPLClassifiedAt    *time.Time          `json:"npl_classified_at,omitempty"`
	RecoveredAt        *time.Time          `json:"recovered_at,omitempty"`
	RecoveredAmount    decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"recovered_amount"`
	RecoveryMethod     string              `gorm:"type:varchar(40)" json:"recovery_method,omitempty"`
	WrittenOffAt       *time.Time          `json:"written_off_at,omitempty"`
	WrittenOffAmount   decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"written_off_amount"`
}

func (Loan) TableName() string {
	return "loans"
}

// BeforeCreate hook for Loan
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = LoanStatusActive
	}
	return l.Validate()
}

func (l *Loan) Validate() error {
	if !IsValidLoanType(l.LoanType) {
		return ErrInvalidLoanType
	}
	if !IsValidLoanStatus(l.Status) {
		return ErrInvalidLoanStatus
	}
	if l.OutstandingBalance.GreaterThan(l.Principal) {
		return ErrOutstandingExceeds
	}
	if l.Status == LoanStatusActive && l.DaysPastDue != 0 {
		return ErrActiveLoanPastDue
	}
	return nil
}

// IsPerforming reports whether the loan is on book and earning interest.
func (l Loan) IsPerforming() bool {
	return l.Status == LoanStatusActive || l.Status == LoanStatusDisbursed
}

// IsOnBook reports whether the loan still carries an outstanding exposure.
func (l Loan) IsOnBook() bool {
	return l.IsPerforming() || l.Status == LoanStatusDelinquent || l.Status == LoanStatusDefault
}

// IsNonPerforming reports whether the loan belongs to the NPL population.
func (l Loan) IsNonPerforming(dpdThreshold int) bool {
	return l.DaysPastDue > dpdThreshold || l.Status == LoanStatusDefault || l.Status == LoanStatusWrittenOff
}

func IsValidLoanType(loanType string) bool {
	for _, t := range LoanTypes {
		if t == loanType {
			return true
		}
	}
	return false
}

func IsValidLoanStatus(status string) bool {
	switch status {
	case LoanStatusActive, LoanStatusDisbursed, LoanStatusDelinquent, LoanStatusDefault, LoanStatusWrittenOff, LoanStatusClosed:
		return true
	}
	return false
}
