package repositories

import (
	"context"
	"fmt"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

type loanReader struct {
	db *gorm.DB
}

// NewLoanReader creates a new loan reader
func NewLoanReader(db *gorm.DB) LoanReaderInterface {
	return &loanReader{db: db}
}

func (r *loanReader) ListLoans(ctx context.Context, query models.LoanQuery) ([]models.Loan, error) {
	loans := []models.Loan{}

	tx := r.db.WithContext(ctx).Model(&models.Loan{})
	if len(query.Statuses) > 0 {
		tx = tx.Where("status IN ?", query.Statuses)
	}
	if len(query.Types) > 0 {
		tx = tx.Where("loan_type IN ?", query.Types)
	}
	if query.DisbursedFrom != nil {
		tx = tx.Where("disbursed_at >= ?", *query.DisbursedFrom)
	}
	if query.DisbursedTo != nil {
		tx = tx.Where("disbursed_at <= ?", *query.DisbursedTo)
	}

	if err := tx.Order("disbursed_at ASC").Order("id ASC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}
