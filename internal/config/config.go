package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/courseops/debate-signup/pkg/core/reveal"
)

const (
	// dayKeyLayout is the required form of revealSchedule keys ("Sep 26",
	// "Nov 07"). Keys must be zero-padded or they will never match a debate.
	dayKeyLayout = "Jan 02"
	// revealTimeLayout is the required form of revealSchedule values,
	// interpreted in the configured timezone
	revealTimeLayout = "2006-01-02 15:04"
)

// Config represents the application configuration
type Config struct {
	Timezone           string            `yaml:"timezone" validate:"required"`
	InstructorPassword string            `yaml:"instructorPassword" validate:"required"`
	ScheduleFile       string            `yaml:"scheduleFile" validate:"required"`
	SubmissionsFile    string            `yaml:"submissionsFile" validate:"required"`
	RevealSchedule     map[string]string `yaml:"revealSchedule" validate:"required,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from debate_signup_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the timezone, and every
// reveal schedule entry
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	for key, value := range cfg.RevealSchedule {
		parsed, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			return fmt.Errorf("invalid revealSchedule day key %q: %w", key, err)
		}
		// Reject non-canonical keys like "Nov 7": debates are matched by the
		// zero-padded form, so such an entry would silently never apply
		if canonical := parsed.Format(dayKeyLayout); canonical != key {
			return fmt.Errorf("revealSchedule day key %q must be written %q", key, canonical)
		}

		if _, err := time.Parse(revealTimeLayout, value); err != nil {
			return fmt.Errorf("invalid revealSchedule time for %q: %w", key, err)
		}
	}

	return nil
}

// Location returns the configured timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// RevealTimes materializes the reveal schedule as absolute instants in the
// configured timezone
func (c *Config) RevealTimes() (reveal.Schedule, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	schedule := make(reveal.Schedule, len(c.RevealSchedule))
	for key, value := range c.RevealSchedule {
		instant, err := time.ParseInLocation(revealTimeLayout, value, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid revealSchedule time for %q: %w", key, err)
		}
		schedule[key] = instant
	}

	return schedule, nil
}

// findConfigFile searches for debate_signup_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "debate_signup_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
