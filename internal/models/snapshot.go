package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoanSnapshot is the month-end delinquency state of a loan.
type LoanSnapshot struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LoanID       uuid.UUID `gorm:"type:uuid;not null;index" json:"loan_id"`
	SnapshotDate time.Time `gorm:"not null;index" json:"snapshot_date"`
	MonthsOnBook int       `gorm:"not null" json:"months_on_book"`
	DaysPastDue  int       `gorm:"not null;default:0" json:"days_past_due"`
	Status       string    `gorm:"type:varchar(20);not null" json:"status"`
}

func (LoanSnapshot) TableName() string {
	return "loan_snapshots"
}

// BeforeCreate hook for LoanSnapshot
func (s *LoanSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsClosed reports whether the loan had left the book at this snapshot.
func (s LoanSnapshot) IsClosed() bool {
	return s.Status == LoanStatusClosed || s.Status == LoanStatusWrittenOff
}

// CashSnapshot is an externally reported cash position.
type CashSnapshot struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AsOf    time.Time       `gorm:"not null;uniqueIndex" json:"as_of"`
	Balance decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`
}

func (CashSnapshot) TableName() string {
	return "cash_snapshots"
}

// BeforeCreate hook for CashSnapshot
func (s *CashSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
