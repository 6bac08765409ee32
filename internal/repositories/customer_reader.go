package repositories

import (
	"context"
	"fmt"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

type customerReader struct {
	db *gorm.DB
}

// NewCustomerReader creates a new customer reader
func NewCustomerReader(db *gorm.DB) CustomerReaderInterface {
	return &customerReader{db: db}
}

func (r *customerReader) ListCustomers(ctx context.Context, query models.CustomerQuery) ([]models.Customer, error) {
	customers := []models.Customer{}

	tx := r.db.WithContext(ctx).Model(&models.Customer{})
	if len(query.Segments) > 0 {
		tx = tx.Where("segment IN ?", query.Segments)
	}
	if query.CreatedBefore != nil {
		tx = tx.Where("created_at <= ?", *query.CreatedBefore)
	}

	if err := tx.Order("created_at ASC").Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
