package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/policy"
)

type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	Logging       LoggingConfig       `yaml:"logging"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Reminders     RemindersConfig     `yaml:"reminders"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type NotificationsConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

type RemindersConfig struct {
	DailyHour  int `yaml:"daily_hour"`
	HighHour   int `yaml:"high_hour"`
	MediumHour int `yaml:"medium_hour"`
	LowHour    int `yaml:"low_hour"`
}

func Default() *Config {
	return &Config{
		Database:      DatabaseConfig{Path: defaultDBPath()},
		Notifications: NotificationsConfig{BufferSize: 16},
		Reminders:     RemindersConfig{DailyHour: 9, HighHour: 9, MediumHour: 13, LowHour: 18},
	}
}

// Load reads the config file at path, or falls back to defaults when the
// file does not exist. An empty path means "config.yml" next to the binary's
// working directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = "config.yml"
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Notifications.BufferSize <= 0 {
		cfg.Notifications.BufferSize = 16
	}
	return cfg, nil
}

// Policy converts the configured hours into the derivation policy.
func (c *Config) Policy() policy.Policy {
	return policy.Policy{
		DailyHour: c.Reminders.DailyHour,
		PriorityHours: map[model.Priority]int{
			model.PriorityHigh:   c.Reminders.HighHour,
			model.PriorityMedium: c.Reminders.MediumHour,
			model.PriorityLow:    c.Reminders.LowHour,
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "smartreminder.db"
	}
	return filepath.Join(home, ".smartreminder", "smartreminder.db")
}
