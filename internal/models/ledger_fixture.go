package models

// LedgerFixture is a complete synthetic ledger, written by the seed command.
type LedgerFixture struct {
	Customers     []Customer
	Accounts      []Account
	Transactions  []Transaction
	Loans         []Loan
	LoanSnapshots []LoanSnapshot
	CashSnapshots []CashSnapshot
	Employees     []Employee
}
