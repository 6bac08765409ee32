package database

import (
	"testing"
	"time"

	"banking-reports/internal/config"
	"banking-reports/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/logger"
)

// ledgerTables lists the ledger tables children first, the order rows must
// be removed in.
var ledgerTables = []string{
	"loan_snapshots",
	"cash_snapshots",
	"employees",
	"transactions",
	"loans",
	"accounts",
	"customers",
}

// SetupTestDB opens an in-memory sqlite ledger with every table migrated.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, logger.Silent)
	if err != nil {
		t.Fatalf("open test ledger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate test ledger: %v", err)
	}
	return db
}

// CleanupTestDB empties every ledger table.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range ledgerTables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("cleanup %s: %v", table, err)
		}
	}
}

func mustCreate[T any](t *testing.T, db *DB, row *T) *T {
	t.Helper()
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("insert %T: %v", row, err)
	}
	return row
}

func CreateTestCustomer(t *testing.T, db *DB, segment string, createdAt time.Time) *models.Customer {
	t.Helper()
	return mustCreate(t, db, &models.Customer{
		Segment:    segment,
		RiskRating: models.RiskRatingLow,
		KYCStatus:  models.KYCStatusVerified,
		CreatedAt:  createdAt,
	})
}

func CreateTestAccount(t *testing.T, db *DB, customerID uuid.UUID, accountType, status string, balance decimal.Decimal, openedAt time.Time) *models.Account {
	t.Helper()
	return mustCreate(t, db, &models.Account{
		CustomerID:    customerID,
		AccountNumber: uuid.NewString()[:12],
		AccountType:   accountType,
		Balance:       balance,
		Status:        status,
		OpenedAt:      openedAt,
	})
}

// CreateTestLoan books a loan whose principal equals its outstanding balance.
func CreateTestLoan(t *testing.T, db *DB, customerID uuid.UUID, loanType, status string, outstanding decimal.Decimal, disbursedAt time.Time) *models.Loan {
	t.Helper()
	return mustCreate(t, db, &models.Loan{
		CustomerID:         customerID,
		LoanType:           loanType,
		Principal:          outstanding,
		OutstandingBalance: outstanding,
		InterestRate:       decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Status:             status,
		DisbursedAt:        disbursedAt,
	})
}
