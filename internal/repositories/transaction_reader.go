package repositories

import (
	"context"
	"fmt"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

type transactionReader struct {
	db *gorm.DB
}

// NewTransactionReader creates a new transaction reader
func NewTransactionReader(db *gorm.DB) TransactionReaderInterface {
	return &transactionReader{db: db}
}

// ListTransactions returns transactions that occurred within [From, To].
func (r *transactionReader) ListTransactions(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, error) {
	transactions := []models.Transaction{}

	tx := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("occurred_at >= ? AND occurred_at <= ?", query.From, query.To)
	if len(query.Statuses) > 0 {
		tx = tx.Where("status IN ?", query.Statuses)
	}
	if len(query.Types) > 0 {
		tx = tx.Where("transaction_type IN ?", query.Types)
	}

	if err := tx.Order("occurred_at ASC").Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
