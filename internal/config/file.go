package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with optional fields so absent keys leave
// defaults untouched.
type fileConfig struct {
	Database struct {
		Dir          *string        `yaml:"dir"`
		Filename     *string        `yaml:"filename"`
		QueryTimeout *time.Duration `yaml:"query_timeout"`
		WriteTimeout *time.Duration `yaml:"write_timeout"`
	} `yaml:"database"`
	Validation struct {
		TitleMinLength *int `yaml:"title_min_length"`
		TitleMaxLength *int `yaml:"title_max_length"`
	} `yaml:"validation"`
	Notifications struct {
		CompletionAudience *string `yaml:"completion_audience"`
	} `yaml:"notifications"`
	Reminder struct {
		DailyAt  *string        `yaml:"daily_at"`
		Interval *time.Duration `yaml:"interval"`
	} `yaml:"reminder"`
	Application struct {
		Timeout    *time.Duration `yaml:"timeout"`
		Verbose    *bool          `yaml:"verbose"`
		DefaultOrg *string        `yaml:"default_org"`
	} `yaml:"application"`
}

// DefaultConfigFilePath returns the default location of the YAML config file.
// WT_CONFIG_FILE overrides it.
func DefaultConfigFilePath() string {
	if path := os.Getenv("WT_CONFIG_FILE"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".wt", "config.yaml")
}

// LoadFromFile merges settings from a YAML config file into the
// configuration. A missing file is not an error; a malformed one is.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Database.Dir != nil {
		c.Database.Dir = *fc.Database.Dir
	}
	if fc.Database.Filename != nil {
		c.Database.Filename = *fc.Database.Filename
	}
	if fc.Database.QueryTimeout != nil {
		c.Database.QueryTimeout = *fc.Database.QueryTimeout
	}
	if fc.Database.WriteTimeout != nil {
		c.Database.WriteTimeout = *fc.Database.WriteTimeout
	}

	if fc.Validation.TitleMinLength != nil {
		c.Validation.TitleMinLength = *fc.Validation.TitleMinLength
	}
	if fc.Validation.TitleMaxLength != nil {
		c.Validation.TitleMaxLength = *fc.Validation.TitleMaxLength
	}

	if fc.Notifications.CompletionAudience != nil {
		c.Notifications.CompletionAudience = *fc.Notifications.CompletionAudience
	}

	if fc.Reminder.DailyAt != nil {
		c.Reminder.DailyAt = *fc.Reminder.DailyAt
	}
	if fc.Reminder.Interval != nil {
		c.Reminder.Interval = *fc.Reminder.Interval
	}

	if fc.Application.Timeout != nil {
		c.Application.Timeout = *fc.Application.Timeout
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}
	if fc.Application.DefaultOrg != nil {
		c.Application.DefaultOrg = *fc.Application.DefaultOrg
	}

	return nil
}
