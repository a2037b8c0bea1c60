package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"alloy-catalog/internal/model"

	"github.com/joho/godotenv"
)

// Backend modes.
const (
	BackendStatic = "static"
	BackendRemote = "remote"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Backend  BackendConfig
	Database DatabaseConfig
	S3       S3Config
	Inquiry  InquiryConfig
	Contact  ContactConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration. An empty key disables
// the API key check.
type AuthConfig struct {
	APIKey string
}

// BackendConfig selects where catalogue queries are answered.
type BackendConfig struct {
	Mode    string // "static" or "remote"
	BaseURL string
	APIKey  string
	Timeout int // seconds
}

// DatabaseConfig holds database-related configuration for inquiry storage.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// S3Config holds AWS S3 configuration for the inquiry archive.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Key prefix within bucket (e.g., "inquiries/")
}

// InquiryConfig holds the local inquiry archive settings.
type InquiryConfig struct {
	ArchivePath string // JSON lines file; empty disables the local archive
}

// ContactConfig holds the published contact details.
type ContactConfig struct {
	Phone    string
	Email    string
	Address  string
	Website  string
	Weekdays string
	Weekend  string
}

// Load loads configuration from environment variables, after reading an
// optional .env file (ENV_FILE overrides its path).
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Backend: BackendConfig{
			Mode:    getEnv("BACKEND_MODE", BackendStatic),
			BaseURL: getEnv("BACKEND_BASE_URL", "https://api.mzenskprokat.ru/"),
			APIKey:  getEnv("BACKEND_API_KEY", ""),
			Timeout: getEnvAsInt("BACKEND_TIMEOUT", 30),
		},
		Database: DatabaseConfig{
			Enabled:         getEnvAsBool("DB_ENABLED", false),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "alloycatalog"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "eu-central-1"),
			Prefix:  getEnv("S3_PREFIX", "inquiries/"),
		},
		Inquiry: InquiryConfig{
			ArchivePath: getEnv("INQUIRY_ARCHIVE_PATH", ""),
		},
		Contact: ContactConfig{
			Phone:    getEnv("CONTACT_PHONE", ""),
			Email:    getEnv("CONTACT_EMAIL", "info@mzenskprokat.ru"),
			Address:  getEnv("CONTACT_ADDRESS", "Орловская область, г. Мценск"),
			Website:  getEnv("CONTACT_WEBSITE", "https://mzenskprokat.ru"),
			Weekdays: getEnv("CONTACT_HOURS_WEEKDAYS", "Пн-Пт: 8:00-17:00"),
			Weekend:  getEnv("CONTACT_HOURS_WEEKEND", "Сб-Вс: выходной"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Backend.Mode {
	case BackendStatic:
	case BackendRemote:
		if c.Backend.BaseURL == "" {
			return fmt.Errorf("backend base URL is required in remote mode")
		}
		if c.Backend.Timeout < 1 {
			return fmt.Errorf("backend timeout must be at least 1 second")
		}
	default:
		return fmt.Errorf("invalid backend mode: %s (must be static or remote)", c.Backend.Mode)
	}

	if c.Database.Enabled {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}

		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}

		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}

		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RequestTimeout returns the remote backend timeout.
func (c *BackendConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ContactInfo converts the contact settings into the published envelope.
func (c *ContactConfig) ContactInfo() model.ContactInfo {
	return model.ContactInfo{
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		Website: c.Website,
		WorkingHours: model.WorkingHours{
			Weekdays: c.Weekdays,
			Weekend:  c.Weekend,
		},
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
