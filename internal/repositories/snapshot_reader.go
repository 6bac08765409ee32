package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

type snapshotReader struct {
	db *gorm.DB
}

// NewSnapshotReader creates a new snapshot reader
func NewSnapshotReader(db *gorm.DB) SnapshotReaderInterface {
	return &snapshotReader{db: db}
}

// ListSnapshots returns the monthly snapshots of loans disbursed in the query window,
// ordered by loan and months on book.
func (r *snapshotReader) ListSnapshots(ctx context.Context, query models.SnapshotQuery) ([]models.LoanSnapshot, error) {
	snapshots := []models.LoanSnapshot{}

	tx := r.db.WithContext(ctx).
		Model(&models.LoanSnapshot{}).
		Select("loan_snapshots.*").
		Joins("JOIN loans ON loans.id = loan_snapshots.loan_id").
		Where("loans.disbursed_at >= ? AND loans.disbursed_at <= ?", query.DisbursedFrom, query.DisbursedTo)
	if len(query.LoanTypes) > 0 {
		tx = tx.Where("loans.loan_type IN ?", query.LoanTypes)
	}

	err := tx.Order("loan_snapshots.loan_id ASC").
		Order("loan_snapshots.months_on_book ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list loan snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *snapshotReader) BalanceAsOf(ctx context.Context, asOf time.Time) (*models.CashSnapshot, error) {
	var snapshot models.CashSnapshot
	err := r.db.WithContext(ctx).
		Where("as_of <= ?", asOf).
		Order("as_of DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cash balance: %w", err)
	}
	return &snapshot, nil
}
