package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusReversed  = "reversed"

	ChannelBranch = "branch"
	ChannelATM    = "atm"
	ChannelOnline = "online"
	ChannelMobile = "mobile"
	ChannelPOS    = "pos"
)

var ErrInvalidTransactionStatus = errors.New("invalid transaction status")

// Channels lists transaction channels in reporting order.
var Channels = []string{ChannelBranch, ChannelATM, ChannelOnline, ChannelMobile, ChannelPOS}

// Transaction is a posted ledger movement. Amount is signed: positive for
// inflows, negative for outflows.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(40);not null" json:"transaction_type"`
	Channel         string          `gorm:"type:varchar(20)" json:"channel,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'completed';index" json:"status"`
	OccurredAt      time.Time       `gorm:"not null;index" json:"occurred_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now().UTC()
	}
	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}
	return nil
}

func (t Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// Volume is the unsigned size of the movement.
func (t Transaction) Volume() decimal.Decimal {
	return t.Amount.Abs()
}

func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusReversed:
		return true
	}
	return false
}
