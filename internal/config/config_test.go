package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := Default()

	s.Equal("8080", cfg.Server.Port)
	s.Equal("development", cfg.Server.Environment)
	s.Equal(15*time.Second, cfg.Server.ReadTimeout)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.Equal(DriverPostgres, cfg.Database.Driver)
	s.Equal(25, cfg.Database.MaxConnections)
	s.Empty(cfg.Database.MigrationsPath)
	s.False(cfg.Database.AutoMigrate)
	s.Equal(10, cfg.Security.RateLimitPerSecond)
	s.Equal(30*time.Second, cfg.Reports.RequestTimeout)
	s.Equal(1, cfg.Reports.BreakerHalfOpenRequests)
	s.NoError(cfg.Validate())
	s.True(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestLoad_EnvironmentOverrides() {
	s.T().Setenv("APP_ENV", "production")
	s.T().Setenv("SERVER_PORT", "9090")
	s.T().Setenv("DB_DRIVER", "sqlite")
	s.T().Setenv("DB_SQLITE_PATH", "/tmp/ledger.db")
	s.T().Setenv("DB_MAX_CONNECTIONS", "4")
	s.T().Setenv("AUTO_MIGRATE", "true")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	s.T().Setenv("REPORT_REQUEST_TIMEOUT", "45s")
	s.T().Setenv("LEDGER_BREAKER_RESET_TIMEOUT", "1m")

	cfg, err := Load()

	s.Require().NoError(err)
	s.True(cfg.IsProduction())
	s.Equal("9090", cfg.Server.Port)
	s.Equal(DriverSQLite, cfg.Database.Driver)
	s.Equal("/tmp/ledger.db", cfg.Database.SQLitePath)
	s.Equal(4, cfg.Database.MaxConnections)
	s.True(cfg.Database.AutoMigrate)
	s.Equal([]string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowOrigins)
	s.Equal(45*time.Second, cfg.Reports.RequestTimeout)
	s.Equal(time.Minute, cfg.Reports.BreakerResetTimeout)
}

func (s *ConfigTestSuite) TestLoad_RejectsInvalidValues() {
	testCases := []struct {
		name  string
		env   string
		value string
	}{
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"unknown environment", "APP_ENV", "qa"},
		{"no connections", "DB_MAX_CONNECTIONS", "0"},
		{"malformed duration", "REPORT_REQUEST_TIMEOUT", "soon"},
		{"malformed integer", "RATE_LIMIT_BURST", "many"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.env, tc.value)

			_, err := Load()

			s.Error(err)
		})
	}
}

func (s *ConfigTestSuite) TestDSN() {
	cfg := Default()

	s.Equal("host=localhost port=5432 user=ledger_reader password=ledger_password dbname=ledger_db sslmode=disable",
		cfg.Database.DSN())
}
