package config

import (
	"fmt"
	"strings"
	"time"

	"game-economy/pkg/economy"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Economy   EconomyConfig   `mapstructure:"economy"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
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
	Enabled  bool   `mapstructure:"enabled"`
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

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// StorageConfig selects the balance store.
type StorageConfig struct {
	Driver  string `mapstructure:"driver"`  // postgres, memory
	Migrate bool   `mapstructure:"migrate"` // apply schema on startup (postgres only)
}

// EconomyConfig holds the backend's policy switches and currency catalog.
type EconomyConfig struct {
	Name             string             `mapstructure:"name"`
	DefaultCurrency  string             `mapstructure:"default_currency"`
	Currencies       []economy.Currency `mapstructure:"currencies"`
	CurrencyFile     string             `mapstructure:"currency_file"`
	WorldBalances    bool               `mapstructure:"world_balances"`
	Banks            bool               `mapstructure:"banks"`
	MultiCurrency    bool               `mapstructure:"multi_currency"`
	AllowOverdraft   bool               `mapstructure:"allow_overdraft"`
	AutoCreate       bool               `mapstructure:"auto_create_accounts"`
	StartingBalance  string             `mapstructure:"starting_balance"`
	StrictCurrencies bool               `mapstructure:"strict_currencies"`
	CacheTTL         time.Duration      `mapstructure:"cache_ttl"`
}

// StartingBalanceAmount parses StartingBalance. An empty value is zero.
func (e EconomyConfig) StartingBalanceAmount() (decimal.Decimal, error) {
	if strings.TrimSpace(e.StartingBalance) == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(e.StartingBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing economy.starting_balance: %w", err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("economy.starting_balance must not be negative")
	}
	return amount, nil
}

// RateLimitConfig configures per-host request limits on the HTTP API.
type RateLimitConfig struct {
	Enabled           bool  `mapstructure:"enabled"`
	RequestsPerMinute int64 `mapstructure:"requests_per_minute"`
	Burst             int   `mapstructure:"burst"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ECO_.
// Nested keys use underscore: ECO_DATABASE_HOST, ECO_ECONOMY_BANKS, etc.
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
	v.SetDefault("database.dbname", "game_economy")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "720h")
	v.SetDefault("jwt.issuer", "game-economy")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("storage.migrate", true)
	v.SetDefault("economy.name", "game-economy")
	v.SetDefault("economy.default_currency", "dollar")
	v.SetDefault("economy.currencies", []map[string]interface{}{
		{
			"name":              "dollar",
			"singular":          "Dollar",
			"plural":            "Dollars",
			"symbol":            "$",
			"fractional_digits": 2,
		},
	})
	v.SetDefault("economy.currency_file", "")
	v.SetDefault("economy.world_balances", false)
	v.SetDefault("economy.banks", true)
	v.SetDefault("economy.multi_currency", true)
	v.SetDefault("economy.allow_overdraft", false)
	v.SetDefault("economy.auto_create_accounts", true)
	v.SetDefault("economy.starting_balance", "0")
	v.SetDefault("economy.strict_currencies", false)
	v.SetDefault("economy.cache_ttl", "5m")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_minute", 600)
	v.SetDefault("ratelimit.burst", 50)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ECO_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ECO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Economy.CurrencyFile != "" {
		catalog, err := LoadCurrencyCatalog(cfg.Economy.CurrencyFile)
		if err != nil {
			return nil, err
		}
		cfg.Economy.Currencies = MergeCurrencies(cfg.Economy.Currencies, catalog)
	}

	return &cfg, nil
}
