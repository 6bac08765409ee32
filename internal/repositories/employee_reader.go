package repositories

import (
	"context"
	"fmt"
	"time"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

type employeeReader struct {
	db *gorm.DB
}

// NewEmployeeReader creates a new employee reader
func NewEmployeeReader(db *gorm.DB) EmployeeReaderInterface {
	return &employeeReader{db: db}
}

// CountActive counts staff hired on or before asOf and not terminated by then.
func (r *employeeReader) CountActive(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("hired_at <= ?", asOf).
		Where("terminated_at IS NULL OR terminated_at > ?", asOf).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
