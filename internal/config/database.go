package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fireteam/teamfinder/pkg/retry"
)

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string

	// Pool settings for the underlying sql.DB.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadDatabaseConfigFromEnv loads database configuration from environment variables.
func LoadDatabaseConfigFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Host:            GetEnv("DB_HOST", "localhost"),
		User:            GetEnv("DB_USER", "postgres"),
		Password:        GetEnv("DB_PASSWORD", "postgres"),
		DBName:          GetEnv("DB_NAME", "teamfinder"),
		Port:            GetEnv("DB_PORT", "5432"),
		SSLMode:         GetEnv("DB_SSLMODE", "disable"),
		TimeZone:        GetEnv("DB_TIMEZONE", "UTC"),
		MaxOpenConns:    GetEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: GetEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime: GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
	}
}

// DSN constructs the PostgreSQL DSN string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone)
}

// SanitizeError removes the password from connection error messages.
func (c DatabaseConfig) SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	errMsg := strings.ReplaceAll(err.Error(), c.Password, "***")
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads database connect retry configuration.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	return cfg
}
