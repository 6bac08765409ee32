package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeTerm     = "term"
	AccountTypeBusiness = "business"

	AccountStatusActive   = "active"
	AccountStatusDormant  = "dormant"
	AccountStatusInactive = "inactive"
	AccountStatusClosed   = "closed"
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
)

// AccountTypes lists deposit account types in reporting order.
var AccountTypes = []string{AccountTypeChecking, AccountTypeSavings, AccountTypeTerm, AccountTypeBusiness}

var accountStatuses = []string{AccountStatusActive, AccountStatusDormant, AccountStatusInactive, AccountStatusClosed}

// Account is a deposit account row owned by the core ledger.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	AccountNumber string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"account_number"`
	AccountType   string          `gorm:"type:varchar(20);not null;index" json:"account_type"`
	Balance       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"balance"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	OpenedAt      time.Time       `gorm:"not null;index" json:"opened_at"`
	ClosedAt      *time.Time      `gorm:"index" json:"closed_at,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate fills the ID, status and opening date, then validates.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AccountStatusActive
	}
	if a.OpenedAt.IsZero() {
		a.OpenedAt = time.Now().UTC()
	}
	return a.Validate()
}

func (a *Account) Validate() error {
	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}
	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}
	return nil
}

// IsActive reports whether the account counts toward active aggregates.
// Dormant accounts still hold balances; closed and inactive ones do not.
func (a Account) IsActive() bool {
	return a.Status == AccountStatusActive || a.Status == AccountStatusDormant
}

// OpenAt reports whether the account existed and was not yet closed at t.
func (a Account) OpenAt(t time.Time) bool {
	if a.OpenedAt.After(t) {
		return false
	}
	return a.ClosedAt == nil || a.ClosedAt.After(t)
}

func IsValidAccountType(accountType string) bool {
	return slices.Contains(AccountTypes, accountType)
}

func IsValidAccountStatus(status string) bool {
	return slices.Contains(accountStatuses, status)
}
