package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional YAML config file
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: defaults already applied in NewConfig

	// Step 2: optional config file
	if err := l.config.LoadFromFile(DefaultConfigFilePath()); err != nil {
		return nil, err
	}

	// Step 3: environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Validation overrides
	TitleMinLength *int
	TitleMaxLength *int

	// Notifications overrides
	CompletionAudience *string

	// Reminder overrides
	ReminderDailyAt  *string
	ReminderInterval *time.Duration

	// Application overrides
	Timeout    *time.Duration
	Verbose    *bool
	DefaultOrg *string
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyOverrides applies command line overrides to the configuration
func applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	if overrides.TitleMinLength != nil {
		config.Validation.TitleMinLength = *overrides.TitleMinLength
	}
	if overrides.TitleMaxLength != nil {
		config.Validation.TitleMaxLength = *overrides.TitleMaxLength
	}

	if overrides.CompletionAudience != nil {
		config.Notifications.CompletionAudience = *overrides.CompletionAudience
	}

	if overrides.ReminderDailyAt != nil {
		config.Reminder.DailyAt = *overrides.ReminderDailyAt
	}
	if overrides.ReminderInterval != nil {
		config.Reminder.Interval = *overrides.ReminderInterval
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.DefaultOrg != nil {
		config.Application.DefaultOrg = *overrides.DefaultOrg
	}
}
