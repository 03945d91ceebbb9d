package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultFirstAccountNumber = 1001
	defaultStatementPageSize  = 50
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	RateLimit          string   // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string // "*" allows every origin
	SeedDemoData       bool
	FirstAccountNumber int
	StatementPageSize  int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SEED_DEMO_DATA", false)
	v.SetDefault("FIRST_ACCOUNT_NUMBER", defaultFirstAccountNumber)
	v.SetDefault("STATEMENT_PAGE_SIZE", defaultStatementPageSize)
}

// Invalid values are replaced by their defaults with a warning rather than failing startup.
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		RateLimit:          strings.TrimSpace(v.GetString("RATE_LIMIT")),
		SeedDemoData:       v.GetBool("SEED_DEMO_DATA"),
		FirstAccountNumber: v.GetInt("FIRST_ACCOUNT_NUMBER"),
		StatementPageSize:  v.GetInt("STATEMENT_PAGE_SIZE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		cfg.LogLevel = slog.LevelInfo
		slog.Warn("Invalid LOG_LEVEL, using default", slog.String("value", v.GetString("LOG_LEVEL")), slog.String("default", cfg.LogLevel.String()))
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.FirstAccountNumber < 1 {
		slog.Warn("FIRST_ACCOUNT_NUMBER must be positive, using default", slog.Int("value", cfg.FirstAccountNumber), slog.Int("default", defaultFirstAccountNumber))
		cfg.FirstAccountNumber = defaultFirstAccountNumber
	}
	if cfg.StatementPageSize < 1 {
		slog.Warn("STATEMENT_PAGE_SIZE must be positive, using default", slog.Int("value", cfg.StatementPageSize), slog.Int("default", defaultStatementPageSize))
		cfg.StatementPageSize = defaultStatementPageSize
	}

	return cfg, nil
}

// AllowsAllOrigins reports whether CORS is open to every origin.
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
