package repositories

import (
	"context"
	"time"

	"banking-reports/internal/models"
)

// AccountReaderInterface reads deposit accounts from the ledger
type AccountReaderInterface interface {
	ListAccounts(ctx context.Context, query models.AccountQuery) ([]models.Account, error)
}

// TransactionReaderInterface reads posted transactions from the ledger
type TransactionReaderInterface interface {
	ListTransactions(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, error)
}

// LoanReaderInterface reads the loan book
type LoanReaderInterface interface {
	ListLoans(ctx context.Context, query models.LoanQuery) ([]models.Loan, error)
}

// CustomerReaderInterface reads customer profiles
type CustomerReaderInterface interface {
	ListCustomers(ctx context.Context, query models.CustomerQuery) ([]models.Customer, error)
}

// SnapshotReaderInterface reads point-in-time snapshots.
// BalanceAsOf returns nil, nil when no cash snapshot exists at or before asOf.
type SnapshotReaderInterface interface {
	ListSnapshots(ctx context.Context, query models.SnapshotQuery) ([]models.LoanSnapshot, error)
	BalanceAsOf(ctx context.Context, asOf time.Time) (*models.CashSnapshot, error)
}

// EmployeeReaderInterface counts staff
type EmployeeReaderInterface interface {
	CountActive(ctx context.Context, asOf time.Time) (int64, error)
}

// LedgerSeederInterface writes fixture ledgers into development databases
type LedgerSeederInterface interface {
	Seed(ctx context.Context, fixture *models.LedgerFixture) error
	Truncate(ctx context.Context) error
}
