package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the work tracker application
type Config struct {
	Database      DatabaseConfig
	Validation    ValidationConfig
	Notifications NotificationsConfig
	Reminder      ReminderConfig
	Application   ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `yaml:"dir" env:"WT_DB_DIR"`
	Filename       string        `yaml:"filename" env:"WT_DB_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"WT_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WT_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"WT_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `yaml:"title_min_length" env:"WT_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `yaml:"title_max_length" env:"WT_VALIDATION_TITLE_MAX"`
}

// NotificationsConfig holds notification dispatcher configuration
type NotificationsConfig struct {
	// CompletionAudience is the role audience addressed by completion notices.
	CompletionAudience string `yaml:"completion_audience" env:"WT_NOTIFY_COMPLETION_AUDIENCE"`
}

// ReminderConfig holds overdue-sweep scheduling configuration
type ReminderConfig struct {
	// DailyAt is the HH:MM local time the overdue sweep runs when the
	// remind daemon is active.
	DailyAt string `yaml:"daily_at" env:"WT_REMINDER_DAILY_AT"`
	// Interval overrides DailyAt with a fixed-interval sweep when positive.
	Interval time.Duration `yaml:"interval" env:"WT_REMINDER_INTERVAL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"WT_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"WT_APP_VERBOSE"`
	// DefaultOrg scopes CLI operations when --org is not given.
	DefaultOrg string `yaml:"default_org" env:"WT_APP_DEFAULT_ORG"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".wt")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "wt.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Notifications: NotificationsConfig{
			CompletionAudience: "employer",
		},
		Reminder: ReminderConfig{
			DailyAt:  "09:00",
			Interval: 0,
		},
		Application: ApplicationConfig{
			Timeout:    60 * time.Second,
			Verbose:    false,
			DefaultOrg: "default",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("WT_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("WT_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if minLen := os.Getenv("WT_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("WT_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Notifications configuration
	if audience := os.Getenv("WT_NOTIFY_COMPLETION_AUDIENCE"); audience != "" {
		c.Notifications.CompletionAudience = audience
	}

	// Reminder configuration
	if at := os.Getenv("WT_REMINDER_DAILY_AT"); at != "" {
		c.Reminder.DailyAt = at
	}
	if interval := os.Getenv("WT_REMINDER_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Reminder.Interval = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("WT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("WT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	if org := os.Getenv("WT_APP_DEFAULT_ORG"); org != "" {
		c.Application.DefaultOrg = org
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	if c.Notifications.CompletionAudience == "" {
		return &ConfigError{Field: "notifications.completion_audience", Message: "completion audience cannot be empty"}
	}

	if c.Reminder.DailyAt == "" && c.Reminder.Interval <= 0 {
		return &ConfigError{Field: "reminder.daily_at", Message: "reminder schedule requires a daily time or an interval"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Application.DefaultOrg == "" {
		return &ConfigError{Field: "application.default_org", Message: "default organization cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
