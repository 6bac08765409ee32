package commands

import (
	"fmt"
	"strconv"

	"banking-reports/internal/cli/export"
	"banking-reports/internal/database"

	"github.com/spf13/cobra"
)

type MigrateCmd struct {
	runtime  *Runtime
	reporter *export.Reporter
}

func NewMigrateCmd(rt *Runtime, reporter *export.Reporter) *cobra.Command {
	mc := &MigrateCmd{runtime: rt, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the ledger schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE:  mc.up,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE:  mc.down,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE:  mc.status,
	})

	return cmd
}

// withRunner opens the ledger and hands a migration runner to fn
func (mc *MigrateCmd) withRunner(fn func(*database.MigrationRunner) error) error {
	db, err := mc.runtime.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return fn(database.NewMigrationRunner(sqlDB, mc.runtime.Config.Database.MigrationsPath))
}

func (mc *MigrateCmd) up(cmd *cobra.Command, args []string) error {
	return mc.withRunner(func(runner *database.MigrationRunner) error {
		if err := runner.Up(cmd.Context()); err != nil {
			return err
		}
		mc.reporter.Printf("migrations applied\n")
		return nil
	})
}

func (mc *MigrateCmd) down(cmd *cobra.Command, args []string) error {
	steps := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("steps must be a positive integer, got %q", args[0])
		}
		steps = n
	}

	return mc.withRunner(func(runner *database.MigrationRunner) error {
		if err := runner.Down(steps); err != nil {
			return err
		}
		mc.reporter.Printf("rolled back %d migration(s)\n", steps)
		return nil
	})
}

func (mc *MigrateCmd) status(cmd *cobra.Command, args []string) error {
	return mc.withRunner(func(runner *database.MigrationRunner) error {
		version, dirty, err := runner.Status()
		if err != nil {
			return err
		}
		mc.reporter.Printf("version %d, dirty %t\n", version, dirty)
		return nil
	})
}
