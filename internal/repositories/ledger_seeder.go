package repositories

import (
	"context"
	"fmt"

	"banking-reports/internal/models"

	"gorm.io/gorm"
)

const seedBatchSize = 500

type ledgerSeeder struct {
	db *gorm.DB
}

// NewLedgerSeeder creates a seeder for development and test databases
func NewLedgerSeeder(db *gorm.DB) LedgerSeederInterface {
	return &ledgerSeeder{db: db}
}

// Seed inserts the fixture in one transaction, parents before children.
func (s *ledgerSeeder) Seed(ctx context.Context, fixture *models.LedgerFixture) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			rows interface{}
			size int
		}{
			{"customers", &fixture.Customers, len(fixture.Customers)},
			{"accounts", &fixture.Accounts, len(fixture.Accounts)},
			{"transactions", &fixture.Transactions, len(fixture.Transactions)},
			{"loans", &fixture.Loans, len(fixture.Loans)},
			{"loan snapshots", &fixture.LoanSnapshots, len(fixture.LoanSnapshots)},
			{"cash snapshots", &fixture.CashSnapshots, len(fixture.CashSnapshots)},
			{"employees", &fixture.Employees, len(fixture.Employees)},
		}

		for _, step := range steps {
			if step.size == 0 {
				continue
			}
			if err := tx.CreateInBatches(step.rows, seedBatchSize).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, err)
			}
		}
		return nil
	})
}

// Truncate removes every ledger row, children before parents.
func (s *ledgerSeeder) Truncate(ctx context.Context) error {
	tables := []string{"loan_snapshots", "cash_snapshots", "employees", "transactions", "loans", "accounts", "customers"}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate %s: %w", table, err)
			}
		}
		return nil
	})
}
