package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_BeforeCreate(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		tx := &Transaction{AccountID: uuid.New(), Amount: decimal.NewFromInt(-250)}

		require.NoError(t, tx.BeforeCreate(nil))

		assert.NotEqual(t, uuid.Nil, tx.ID)
		assert.Equal(t, TransactionStatusCompleted, tx.Status)
		assert.False(t, tx.OccurredAt.IsZero())
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		id := uuid.New()
		occurred := time.Date(2024, time.February, 29, 13, 30, 0, 0, time.UTC)
		tx := &Transaction{ID: id, Status: TransactionStatusReversed, OccurredAt: occurred}

		require.NoError(t, tx.BeforeCreate(nil))

		assert.Equal(t, id, tx.ID)
		assert.Equal(t, TransactionStatusReversed, tx.Status)
		assert.Equal(t, occurred, tx.OccurredAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		tx := &Transaction{Status: "settled"}

		assert.ErrorIs(t, tx.BeforeCreate(nil), ErrInvalidTransactionStatus)
	})
}

func TestTransaction_Volume(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1500.25", "1500.25"},
		{"-980.10", "980.1"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			tx := Transaction{Amount: decimal.RequireFromString(tt.amount)}
			assert.Equal(t, tt.want, tx.Volume().String())
		})
	}
}

func TestTransaction_IsCompleted(t *testing.T) {
	assert.True(t, Transaction{Status: TransactionStatusCompleted}.IsCompleted())
	assert.False(t, Transaction{Status: TransactionStatusPending}.IsCompleted())
	assert.False(t, Transaction{Status: TransactionStatusFailed}.IsCompleted())
}

func TestIsValidTransactionStatus(t *testing.T) {
	for _, status := range []string{TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusReversed} {
		assert.True(t, IsValidTransactionStatus(status), status)
	}
	assert.False(t, IsValidTransactionStatus(""))
	assert.False(t, IsValidTransactionStatus("COMPLETED"))
}

func TestChannels_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, channel := range Channels {
		assert.False(t, seen[channel], channel)
		seen[channel] = true
	}
	assert.Len(t, seen, 5)
}
