package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"banking-reports/internal/models"
	"banking-reports/internal/repositories"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrUpstreamRead wraps every failed ledger read. The entity name and the
	// reader's error are kept in the chain.
	ErrUpstreamRead = errors.New("upstream ledger read failed")
	// ErrLedgerUnavailable is returned without touching the ledger while the circuit breaker is open.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
)

const ledgerBreakerService = "ledger"

// LedgerReaders bundles the ledger collaborators the calculators read from.
type LedgerReaders struct {
	Accounts     repositories.AccountReaderInterface
	Transactions repositories.TransactionReaderInterface
	Loans        repositories.LoanReaderInterface
	Customers    repositories.CustomerReaderInterface
	Snapshots    repositories.SnapshotReaderInterface
	Employees    repositories.EmployeeReaderInterface
}

// LedgerLoader issues the reads a report declares. Reads of one batch run
// concurrently and the batch fails as a whole when any read fails.
type LedgerLoader struct {
	readers LedgerReaders
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
}

// NewLedgerLoader wires the loader. A nil breaker or metrics recorder is allowed.
func NewLedgerLoader(readers LedgerReaders, breaker CircuitBreakerInterface, metrics MetricsRecorderInterface) *LedgerLoader {
	return &LedgerLoader{
		readers: readers,
		breaker: breaker,
		metrics: metrics,
	}
}

// BreakerStateRecorder returns a state change hook that publishes the breaker state as a gauge.
func BreakerStateRecorder(metrics MetricsRecorderInterface) func(from, to CircuitBreakerState) {
	return func(_, to CircuitBreakerState) {
		if metrics == nil {
			return
		}
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": ledgerBreakerService})
	}
}

type ledgerRead struct {
	entity string
	run    func(ctx context.Context) error
}

// LedgerBatch collects reads. Each read writes only to its own destination.
type LedgerBatch struct {
	loader *LedgerLoader
	reads  []ledgerRead
}

func (l *LedgerLoader) Batch() *LedgerBatch {
	return &LedgerBatch{loader: l}
}

func (b *LedgerBatch) add(entity string, run func(ctx context.Context) error) *LedgerBatch {
	b.reads = append(b.reads, ledgerRead{entity: entity, run: run})
	return b
}

func (b *LedgerBatch) Accounts(query models.AccountQuery, dst *[]models.Account) *LedgerBatch {
	return b.add("accounts", func(ctx context.Context) error {
		rows, err := b.loader.readers.Accounts.ListAccounts(ctx, query)
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	})
}

func (b *LedgerBatch) Transactions(query models.TransactionQuery, dst *[]models.Transaction) *LedgerBatch {
	return b.add("transactions", func(ctx context.Context) error {
		rows, err := b.loader.readers.Transactions.ListTransactions(ctx, query)
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	})
}

func (b *LedgerBatch) Loans(query models.LoanQuery, dst *[]models.Loan) *LedgerBatch {
	return b.add("loans", func(ctx context.Context) error {
		rows, err := b.loader.readers.Loans.ListLoans(ctx, query)
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	})
}

func (b *LedgerBatch) Customers(query models.CustomerQuery, dst *[]models.Customer) *LedgerBatch {
	return b.add("customers", func(ctx context.Context) error {
		rows, err := b.loader.readers.Customers.ListCustomers(ctx, query)
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	})
}

func (b *LedgerBatch) Snapshots(query models.SnapshotQuery, dst *[]models.LoanSnapshot) *LedgerBatch {
	return b.add("loan_snapshots", func(ctx context.Context) error {
		rows, err := b.loader.readers.Snapshots.ListSnapshots(ctx, query)
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	})
}

// CashBalance leaves dst nil when no snapshot exists.
func (b *LedgerBatch) CashBalance(asOf time.Time, dst **models.CashSnapshot) *LedgerBatch {
	return b.add("cash_snapshots", func(ctx context.Context) error {
		snapshot, err := b.loader.readers.Snapshots.BalanceAsOf(ctx, asOf)
		if err != nil {
			return err
		}
		*dst = snapshot
		return nil
	})
}

// Headcount is skipped when no employee reader is configured.
func (b *LedgerBatch) Headcount(asOf time.Time, dst *int64) *LedgerBatch {
	if b.loader.readers.Employees == nil {
		return b
	}
	return b.add("employees", func(ctx context.Context) error {
		count, err := b.loader.readers.Employees.CountActive(ctx, asOf)
		if err != nil {
			return err
		}
		*dst = count
		return nil
	})
}

// Load runs every read and waits for all of them. The first failure cancels
// the remaining reads and is returned wrapped in ErrUpstreamRead.
func (b *LedgerBatch) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, read := range b.reads {
		g.Go(func() error {
			return b.loader.execute(gctx, read)
		})
	}
	return g.Wait()
}

func (l *LedgerLoader) execute(ctx context.Context, read ledgerRead) error {
	start := time.Now()
	tags := map[string]string{"entity": read.entity}

	run := func() error { return read.run(ctx) }
	var err error
	if l.breaker != nil {
		err = l.breaker.Execute(run)
	} else {
		err = run()
	}

	if l.metrics != nil {
		l.metrics.RecordProcessingTime(MetricLedgerRead, time.Since(start), tags)
	}
	if err == nil {
		return nil
	}

	if l.metrics != nil && !isCancellation(err) {
		l.metrics.IncrementCounter(MetricLedgerReadFailed, tags)
	}
	if errors.Is(err, ErrCircuitBreakerOpen) {
		err = ErrLedgerUnavailable
	}
	return fmt.Errorf("%w: read %s: %w", ErrUpstreamRead, read.entity, err)
}

// isCancellation reports whether err came from the caller's context ending
// rather than from the ledger.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
