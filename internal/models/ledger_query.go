package models

import "time"

// AccountQuery narrows an account read. Zero values mean no restriction.
type AccountQuery struct {
	Statuses     []string
	Types        []string
	OpenedBefore *time.Time
}

// TransactionQuery narrows a transaction read to an inclusive date range.
type TransactionQuery struct {
	From     time.Time
	To       time.Time
	Statuses []string
	Types    []string
}

type LoanQuery struct {
	Statuses      []string
	Types         []string
	DisbursedFrom *time.Time
	DisbursedTo   *time.Time
}

type CustomerQuery struct {
	Segments      []string
	CreatedBefore *time.Time
}

// SnapshotQuery selects the snapshots of loans disbursed in a date range.
type SnapshotQuery struct {
	DisbursedFrom time.Time
	DisbursedTo   time.Time
	LoanTypes     []string
}
