package commands

import (
	"fmt"
	"time"

	"banking-reports/internal/cli/export"
	"banking-reports/internal/repositories"
	"banking-reports/internal/services"

	"github.com/spf13/cobra"
)

// SeedCmd fills a development ledger with synthetic data
type SeedCmd struct {
	customers    int
	transactions int
	loanRate     float64
	employees    int
	months       int
	end          string
	seed         uint64
	truncate     bool
	runtime      *Runtime
	reporter     *export.Reporter
}

func NewSeedCmd(rt *Runtime, reporter *export.Reporter) *cobra.Command {
	defaults := services.DefaultLedgerGeneratorConfig(time.Time{})
	sc := &SeedCmd{runtime: rt, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the ledger with a synthetic bank",
		Long: "Seed writes generated customers, accounts, transactions, loans, snapshots and " +
			"employees. A fixed --seed reproduces the same ledger. Never point this at production.",
		Args: cobra.NoArgs,
		RunE: sc.run,
	}

	cmd.Flags().IntVar(&sc.customers, "customers", defaults.Customers, "Number of customers")
	cmd.Flags().IntVar(&sc.transactions, "transactions-per-account", defaults.TransactionsPerAccount, "Transactions generated per account")
	cmd.Flags().Float64Var(&sc.loanRate, "loan-rate", defaults.LoanRate, "Share of customers holding a loan (0-1)")
	cmd.Flags().IntVar(&sc.employees, "employees", defaults.Employees, "Number of employees")
	cmd.Flags().IntVar(&sc.months, "months", 12, "Length of the generated history in months")
	cmd.Flags().StringVar(&sc.end, "end", "", "Last ledger day (YYYY-MM-DD), defaults to today")
	cmd.Flags().Uint64Var(&sc.seed, "seed", 0, "Random seed, 0 picks one")
	cmd.Flags().BoolVar(&sc.truncate, "truncate", false, "Delete existing ledger rows first")

	return cmd
}

func (sc *SeedCmd) config() (services.LedgerGeneratorConfig, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	if sc.end != "" {
		parsed, err := time.Parse(time.DateOnly, sc.end)
		if err != nil {
			return services.LedgerGeneratorConfig{}, fmt.Errorf("invalid --end %q: expected YYYY-MM-DD", sc.end)
		}
		end = parsed
	}
	if sc.months <= 0 {
		return services.LedgerGeneratorConfig{}, fmt.Errorf("--months must be positive, got %d", sc.months)
	}
	if sc.customers < 0 || sc.transactions < 0 || sc.employees < 0 {
		return services.LedgerGeneratorConfig{}, fmt.Errorf("counts must not be negative")
	}
	if sc.loanRate < 0 || sc.loanRate > 1 {
		return services.LedgerGeneratorConfig{}, fmt.Errorf("--loan-rate must be between 0 and 1, got %v", sc.loanRate)
	}

	cfg := services.DefaultLedgerGeneratorConfig(end)
	cfg.Start = end.AddDate(0, -sc.months, 0)
	cfg.Customers = sc.customers
	cfg.TransactionsPerAccount = sc.transactions
	cfg.LoanRate = sc.loanRate
	cfg.Employees = sc.employees
	cfg.Seed = sc.seed
	return cfg, nil
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := sc.config()
	if err != nil {
		return err
	}

	db, err := sc.runtime.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	seeder := repositories.NewLedgerSeeder(db.DB)
	if sc.truncate {
		if err := seeder.Truncate(cmd.Context()); err != nil {
			return err
		}
	}

	fixture := services.NewLedgerGenerator(cfg.Seed).Generate(cfg)
	if err := seeder.Seed(cmd.Context(), fixture); err != nil {
		return err
	}

	sc.reporter.Printf("seeded ledger %s to %s: %d customers, %d accounts, %d transactions, %d loans, %d loan snapshots, %d cash snapshots, %d employees\n",
		cfg.Start.Format(time.DateOnly), cfg.End.Format(time.DateOnly),
		len(fixture.Customers), len(fixture.Accounts), len(fixture.Transactions),
		len(fixture.Loans), len(fixture.LoanSnapshots), len(fixture.CashSnapshots), len(fixture.Employees))
	return nil
}
