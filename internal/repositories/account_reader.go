package repositories

import (
	"context"
	"fmt"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

type accountReader struct {
	db *gorm.DB
}

// NewAccountReader creates a new account reader
func NewAccountReader(db *gorm.DB) AccountReaderInterface {
	return &accountReader{db: db}
}

func (r *accountReader) ListAccounts(ctx context.Context, query models.AccountQuery) ([]models.Account, error) {
	accounts := []models.Account{}

	tx := r.db.WithContext(ctx).Model(&models.Account{})
	if len(query.Statuses) > 0 {
		tx = tx.Where("status IN ?", query.Statuses)
	}
	if len(query.Types) > 0 {
		tx = tx.Where("account_type IN ?", query.Types)
	}
	if query.OpenedBefore != nil {
		tx = tx.Where("opened_at <= ?", *query.OpenedBefore)
	}

	if err := tx.Order("opened_at ASC").Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
