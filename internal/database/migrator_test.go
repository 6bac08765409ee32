package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type MigrationRunnerTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
}

func (s *MigrationRunnerTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.db = db
	s.mock = mock
}

func (s *MigrationRunnerTestSuite) TearDownTest() {
	s.db.Close()
}

func TestMigrationRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationRunnerTestSuite))
}

func (s *MigrationRunnerTestSuite) runner(attempts int) *MigrationRunner {
	return NewMigrationRunner(s.db, "").WithReadiness(Readiness{Attempts: attempts, Interval: time.Millisecond})
}

func (s *MigrationRunnerTestSuite) TestEmbeddedScripts() {
	scripts, err := NewMigrationRunner(s.db, "").scripts()
	s.Require().NoError(err)

	up, err := fs.Glob(scripts, "*.up.sql")
	s.Require().NoError(err)
	down, err := fs.Glob(scripts, "*.down.sql")
	s.Require().NoError(err)
	s.Contains(up, "000001_create_ledger_tables.up.sql")
	s.Len(down, len(up))
}

func (s *MigrationRunnerTestSuite) TestScriptsFromDirectory() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "000001_x.up.sql"), []byte("SELECT 1;"), 0o600))

	scripts, err := NewMigrationRunner(s.db, dir).scripts()

	s.Require().NoError(err)
	matches, _ := fs.Glob(scripts, "*.sql")
	s.Equal([]string{"000001_x.up.sql"}, matches)
}

func (s *MigrationRunnerTestSuite) TestScriptsDirectoryMissing() {
	file := filepath.Join(s.T().TempDir(), "schema.sql")
	s.Require().NoError(os.WriteFile(file, nil, 0o600))

	for _, dir := range []string{"/nonexistent/migrations", file} {
		_, err := NewMigrationRunner(s.db, dir).scripts()
		s.ErrorIs(err, ErrMigrationsNotFound, dir)
	}
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_RetriesUntilReady() {
	s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	s.mock.ExpectPing()

	s.NoError(s.runner(3).WaitForDatabase(context.Background()))
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_GivesUp() {
	refused := errors.New("connection refused")
	s.mock.ExpectPing().WillReturnError(refused)
	s.mock.ExpectPing().WillReturnError(refused)

	err := s.runner(2).WaitForDatabase(context.Background())

	s.ErrorIs(err, refused)
	s.Contains(err.Error(), "after 2 attempts")
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_StopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMigrationRunner(s.db, "").
		WithReadiness(Readiness{Attempts: 5, Interval: time.Hour}).
		WaitForDatabase(ctx)

	s.ErrorIs(err, context.Canceled)
}

func (s *MigrationRunnerTestSuite) TestUp_LedgerNotReady() {
	s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := s.runner(1).Up(context.Background())

	s.ErrorContains(err, "database readiness check failed")
}

func (s *MigrationRunnerTestSuite) TestDown_RejectsNonPositiveSteps() {
	for _, steps := range []int{0, -2} {
		s.ErrorContains(s.runner(1).Down(steps), "steps must be positive")
	}
}

func (s *MigrationRunnerTestSuite) TestStatus_DirectoryMissing() {
	_, _, err := NewMigrationRunner(s.db, "/nonexistent/migrations").Status()

	s.ErrorIs(err, ErrMigrationsNotFound)
}
