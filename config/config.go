package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends accepted by storage.backend.
const (
	BackendPocketBase = "pocketbase"
	BackendRedis      = "redis"
	BackendMemory     = "memory"
)

// Config holds the application settings.
type Config struct {
	CompanyName         string
	DefaultExchangeRate string // prefilled BRL-per-USD rate, may be empty

	Storage StorageConfig
	Logging LoggingConfig
}

type StorageConfig struct {
	Backend string
	// Quota bounds the memory backend in bytes; zero is unbounded.
	Quota int

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisNamespace string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// New returns a viper instance with defaults, the AVIATIONOPS_ environment
// prefix and the config file search path set. cfgFile overrides the search.
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("company_name", "Aviation Ops")
	v.SetDefault("default_exchange_rate", "")
	v.SetDefault("storage.backend", BackendPocketBase)
	v.SetDefault("storage.quota", 0)
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.namespace", "aviationops")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("AVIATIONOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, when present, and returns the settings.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg := &Config{
		CompanyName:         v.GetString("company_name"),
		DefaultExchangeRate: v.GetString("default_exchange_rate"),
		Storage: StorageConfig{
			Backend:        strings.ToLower(v.GetString("storage.backend")),
			Quota:          v.GetInt("storage.quota"),
			RedisAddr:      v.GetString("storage.redis.addr"),
			RedisPassword:  v.GetString("storage.redis.password"),
			RedisDB:        v.GetInt("storage.redis.db"),
			RedisNamespace: v.GetString("storage.redis.namespace"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and logging settings.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendPocketBase, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s", c.Storage.Backend)
	}
	if c.Storage.Quota < 0 {
		return fmt.Errorf("invalid storage quota: %d", c.Storage.Quota)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// NewLogger builds a slog logger writing to w in the configured format.
func (c LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch c.Format {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", c.Format)
	}
	return slog.New(handler), nil
}

// SetupLogging installs the configured logger as the slog default, writing
// to stderr.
func SetupLogging(c LoggingConfig) error {
	logger, err := c.NewLogger(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	slog.SetDefault(logger)
	return nil
}
