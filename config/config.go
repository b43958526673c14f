package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Operator   OperatorConfig   `mapstructure:"operator"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// LedgerConfig holds the fixed protocol identities.
type LedgerConfig struct {
	AdminAddress     string `mapstructure:"admin_address"`
	PaymasterAddress string `mapstructure:"paymaster_address"`
}

// SettlementConfig holds settlement protocol parameters.
// ChainMode selects what the payer's tail becomes after a successful
// settlement: "legacy" stores the raw revealed secret (source-faithful),
// "clear" empties the tail so a refresh is mandatory before the next payment.
type SettlementConfig struct {
	FeeRateBps      int64         `mapstructure:"fee_rate_bps"`
	PrecommitWindow time.Duration `mapstructure:"precommit_window"`
	ChainMode       string        `mapstructure:"chain_mode"`
}

// OperatorConfig holds the admin operator login credentials.
// PasswordHash is an argon2id encoded hash.
type OperatorConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: OFFPAY_.
// Nested keys use underscore: OFFPAY_DATABASE_HOST, OFFPAY_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "offpay_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "offpay-ledger")
	v.SetDefault("ledger.admin_address", "")
	v.SetDefault("ledger.paymaster_address", "")
	v.SetDefault("settlement.fee_rate_bps", 100)
	v.SetDefault("settlement.precommit_window", "900s")
	v.SetDefault("settlement.chain_mode", "legacy")
	v.SetDefault("operator.username", "admin")
	v.SetDefault("operator.password_hash", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Environment variables
	v.SetEnvPrefix("OFFPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file (optional)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults + env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Settlement.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s SettlementConfig) validate() error {
	if s.FeeRateBps < 0 || s.FeeRateBps > 10000 {
		return fmt.Errorf("settlement.fee_rate_bps must be in [0,10000], got %d", s.FeeRateBps)
	}
	switch s.ChainMode {
	case "legacy", "clear":
	default:
		return fmt.Errorf("settlement.chain_mode must be legacy or clear, got %q", s.ChainMode)
	}
	if s.PrecommitWindow <= 0 {
		return fmt.Errorf("settlement.precommit_window must be positive")
	}
	return nil
}
