package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Security SecurityConfig `mapstructure:"security"`
	Reports  ReportsConfig  `mapstructure:"reports"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port" validate:"required"`
	Host             string        `mapstructure:"host"`
	Environment      string        `mapstructure:"environment" validate:"oneof=development testing test staging production"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConnections  int           `mapstructure:"max_connections" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	// MigrationsPath overrides the embedded SQL migrations when set
	MigrationsPath string `mapstructure:"migrations_path"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
}

// Supported ledger drivers. SQLite is meant for local runs and tests.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type SecurityConfig struct {
	RateLimitPerSecond int `mapstructure:"rate_limit_per_second" validate:"gte=0"`
	RateLimitBurst     int `mapstructure:"rate_limit_burst" validate:"gte=0"`
}

// ReportsConfig controls how report requests reach the ledger.
type ReportsConfig struct {
	PolicyFile              string        `mapstructure:"policy_file"`
	RequestTimeout          time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	BreakerMaxFailures      int           `mapstructure:"breaker_max_failures" validate:"gte=0"`
	BreakerResetTimeout     time.Duration `mapstructure:"breaker_reset_timeout" validate:"gte=0"`
	BreakerHalfOpenRequests int           `mapstructure:"breaker_half_open_requests" validate:"gte=0"`
}

// setting binds a config key to its environment variable and default.
type setting struct {
	key    string
	env    string
	preset any
}

var settings = []setting{
	{"server.port", "SERVER_PORT", "8080"},
	{"server.host", "SERVER_HOST", "localhost"},
	{"server.environment", "APP_ENV", "development"},
	{"server.read_timeout", "SERVER_READ_TIMEOUT", 15 * time.Second},
	{"server.write_timeout", "SERVER_WRITE_TIMEOUT", 30 * time.Second},
	{"server.cors_allow_origins", "CORS_ALLOW_ORIGINS", "*"},

	{"database.driver", "DB_DRIVER", DriverPostgres},
	{"database.sqlite_path", "DB_SQLITE_PATH", "ledger.db"},
	{"database.host", "DB_HOST", "localhost"},
	{"database.port", "DB_PORT", "5432"},
	{"database.user", "DB_USER", "ledger_reader"},
	{"database.password", "DB_PASSWORD", "ledger_password"},
	{"database.name", "DB_NAME", "ledger_db"},
	{"database.ssl_mode", "DB_SSL_MODE", "disable"},
	{"database.max_connections", "DB_MAX_CONNECTIONS", 25},
	{"database.max_idle_conns", "DB_MAX_IDLE_CONNS", 5},
	{"database.conn_max_lifetime", "DB_CONN_MAX_LIFETIME", time.Hour},
	{"database.migrations_path", "DB_MIGRATIONS_PATH", ""},
	{"database.auto_migrate", "AUTO_MIGRATE", false},

	{"security.rate_limit_per_second", "RATE_LIMIT_PER_SECOND", 10},
	{"security.rate_limit_burst", "RATE_LIMIT_BURST", 20},

	{"reports.policy_file", "REPORT_POLICY_FILE", ""},
	{"reports.request_timeout", "REPORT_REQUEST_TIMEOUT", 30 * time.Second},
	{"reports.breaker_max_failures", "LEDGER_BREAKER_MAX_FAILURES", 5},
	{"reports.breaker_reset_timeout", "LEDGER_BREAKER_RESET_TIMEOUT", 30 * time.Second},
	{"reports.breaker_half_open_requests", "LEDGER_BREAKER_HALF_OPEN_REQUESTS", 1},
}

func newViper(withEnv bool) (*viper.Viper, error) {
	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.preset)
		if !withEnv {
			continue
		}
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", s.env, err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	for i, origin := range cfg.Server.CORSAllowOrigins {
		cfg.Server.CORSAllowOrigins[i] = strings.TrimSpace(origin)
	}
	return &cfg, nil
}

// Default returns the configuration with every setting at its default.
func Default() *Config {
	v, _ := newViper(false)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the configuration from the environment on top of the defaults.
func Load() (*Config, error) {
	v, err := newViper(true)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.IsProduction() && len(cfg.Server.CORSAllowOrigins) == 1 && cfg.Server.CORSAllowOrigins[0] == "*" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail at first use.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
