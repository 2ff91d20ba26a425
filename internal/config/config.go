// Package config собирает конфигурацию сервера из нескольких источников.
//
// Порядок применения (каждый следующий слой перекрывает предыдущий):
// значения по умолчанию, YAML файл (-config), .env файл, переменные
// окружения с префиксом DEVSOCIAL_, флаги командной строки.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the complete server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	NATS    NATSConfig    `yaml:"nats"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`

	ShowVersion bool `yaml:"-"`
}

// ServerConfig describes the HTTP listener
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"DEVSOCIAL_ADDR"`
	Prefix          string        `yaml:"prefix" env:"DEVSOCIAL_PREFIX"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"DEVSOCIAL_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"DEVSOCIAL_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"DEVSOCIAL_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"DEVSOCIAL_SHUTDOWN_TIMEOUT"`
}

// AuthConfig holds token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"DEVSOCIAL_JWT_SECRET"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"DEVSOCIAL_TOKEN_TTL"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"DEVSOCIAL_BCRYPT_COST"`
}

// StorageConfig selects the SQL backend
type StorageConfig struct {
	Driver      string `yaml:"driver" env:"DEVSOCIAL_STORAGE_DRIVER"`
	SQLitePath  string `yaml:"sqlite_path" env:"DEVSOCIAL_SQLITE_PATH"`
	PostgresDSN string `yaml:"postgres_dsn" env:"DEVSOCIAL_POSTGRES_DSN"`
}

// RedisConfig включает кэш ленты, если задан Addr
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"DEVSOCIAL_REDIS_ADDR"`
	Password string        `yaml:"password" env:"DEVSOCIAL_REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"DEVSOCIAL_REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env:"DEVSOCIAL_REDIS_TTL"`
}

// NATSConfig включает публикацию событий, если задан URL
type NATSConfig struct {
	URL string `yaml:"url" env:"DEVSOCIAL_NATS_URL"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level" env:"DEVSOCIAL_LOG_LEVEL"`
	Format string `yaml:"format" env:"DEVSOCIAL_LOG_FORMAT"`
}

// MetricsConfig toggles the /metrics endpoint
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"DEVSOCIAL_METRICS_ENABLED"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			Prefix:          "/api",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.DefaultCost,
		},
		Storage: StorageConfig{
			Driver:     DriverSQLite,
			SQLitePath: "devsocial.db",
		},
		Redis: RedisConfig{
			TTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load builds the configuration from args (без имени программы) and the environment
func Load(args []string) (*Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet("devsocial-server", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to YAML config file")
	envFile := flags.String("env-file", ".env", "Path to .env file (ignored if missing)")
	showVersion := flags.Bool("version", false, "Show version information")

	// Флаги применяются последними, поэтому сохраняем их отдельно
	var override Config
	flags.StringVar(&override.Server.Addr, "addr", cfg.Server.Addr, "HTTP listen address")
	flags.StringVar(&override.Server.Prefix, "prefix", cfg.Server.Prefix, "API route prefix")
	flags.StringVar(&override.Auth.JWTSecret, "jwt-secret", "", "JWT signing secret")
	flags.DurationVar(&override.Auth.TokenTTL, "token-ttl", cfg.Auth.TokenTTL, "JWT lifetime")
	flags.StringVar(&override.Storage.Driver, "storage", cfg.Storage.Driver, "Storage driver: sqlite|postgres")
	flags.StringVar(&override.Storage.SQLitePath, "sqlite-path", cfg.Storage.SQLitePath, "SQLite database file")
	flags.StringVar(&override.Storage.PostgresDSN, "postgres-dsn", "", "PostgreSQL DSN")
	flags.StringVar(&override.Redis.Addr, "redis-addr", "", "Redis address for the post cache")
	flags.StringVar(&override.NATS.URL, "nats-url", "", "NATS URL for domain events")
	flags.StringVar(&override.Log.Level, "log-level", cfg.Log.Level, "Log level: debug|info|warn|error")
	flags.StringVar(&override.Log.Format, "log-format", cfg.Log.Format, "Log format: text|json")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg.ShowVersion = *showVersion

	if *configPath != "" {
		if err := cfg.loadYAML(*configPath); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(*envFile); err != nil {
		return nil, err
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = override.Server.Addr
		case "prefix":
			cfg.Server.Prefix = override.Server.Prefix
		case "jwt-secret":
			cfg.Auth.JWTSecret = override.Auth.JWTSecret
		case "token-ttl":
			cfg.Auth.TokenTTL = override.Auth.TokenTTL
		case "storage":
			cfg.Storage.Driver = override.Storage.Driver
		case "sqlite-path":
			cfg.Storage.SQLitePath = override.Storage.SQLitePath
		case "postgres-dsn":
			cfg.Storage.PostgresDSN = override.Storage.PostgresDSN
		case "redis-addr":
			cfg.Redis.Addr = override.Redis.Addr
		case "nats-url":
			cfg.NATS.URL = override.NATS.URL
		case "log-level":
			cfg.Log.Level = override.Log.Level
		case "log-format":
			cfg.Log.Format = override.Log.Format
		}
	})

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// loadDotEnv подгружает .env в окружение процесса; уже заданные переменные не перезаписываются
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}

	return nil
}

func (c *Config) loadEnv() error {
	if err := envdecode.Decode(c); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("failed to decode environment: %w", err)
	}
	return nil
}

// Validate checks the assembled configuration
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite path is required"))
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres dsn is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// NewLogger builds a slog logger from the log settings
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
