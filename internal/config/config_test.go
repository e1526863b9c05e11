package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Timezone:           "America/Toronto",
		InstructorPassword: "letmein",
		ScheduleFile:       "schedule.csv",
		SubmissionsFile:    "submissions.csv",
		RevealSchedule: map[string]string{
			"Sep 26": "2025-09-24 23:59",
			"Nov 07": "2025-11-05 23:59",
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := validConfig()
	cfg.InstructorPassword = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_EmptyRevealSchedule(t *testing.T) {
	cfg := validConfig()
	cfg.RevealSchedule = map[string]string{}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := validConfig()
	cfg.Timezone = "Mars/Olympus"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone")
}

func TestValidate_NonCanonicalDayKey(t *testing.T) {
	// "Nov 7" parses but will never match a schedule date, which always
	// renders zero-padded
	cfg := validConfig()
	cfg.RevealSchedule["Nov 7"] = "2025-11-05 23:59"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `must be written "Nov 07"`)
}

func TestValidate_UnparseableDayKey(t *testing.T) {
	cfg := validConfig()
	cfg.RevealSchedule["September 26th"] = "2025-09-24 23:59"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid revealSchedule day key")
}

func TestValidate_InvalidRevealTime(t *testing.T) {
	cfg := validConfig()
	cfg.RevealSchedule["Sep 26"] = "tomorrow at noon"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid revealSchedule time for "Sep 26"`)
}

func TestLocation(t *testing.T) {
	loc, err := validConfig().Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Toronto", loc.String())
}

func TestRevealTimes_InConfiguredZone(t *testing.T) {
	cfg := validConfig()

	schedule, err := cfg.RevealTimes()
	require.NoError(t, err)
	require.Len(t, schedule, 2)

	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	want := time.Date(2025, 9, 24, 23, 59, 0, 0, toronto)
	assert.True(t, schedule["Sep 26"].Equal(want))
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "debate_signup_config.yaml")

	content := `
timezone: "America/Toronto"
instructorPassword: "letmein"
scheduleFile: "schedule.csv"
submissionsFile: "submissions.csv"
revealSchedule:
  "Sep 26": "2025-09-24 23:59"
  "Nov 07": "2025-11-05 23:59"
`

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "America/Toronto", cfg.Timezone)
	assert.Equal(t, "letmein", cfg.InstructorPassword)
	assert.Equal(t, "schedule.csv", cfg.ScheduleFile)
	assert.Equal(t, "submissions.csv", cfg.SubmissionsFile)
	assert.Len(t, cfg.RevealSchedule, 2)
	assert.Equal(t, "2025-09-24 23:59", cfg.RevealSchedule["Sep 26"])
}

func TestLoadFromPath_MissingRequiredField(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "debate_signup_config.yaml")

	content := `
timezone: "America/Toronto"
scheduleFile: "schedule.csv"
submissionsFile: "submissions.csv"
revealSchedule:
  "Sep 26": "2025-09-24 23:59"
`

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "debate_signup_config.yaml")

	content := `
timezone: "America/Toronto"
  invalid indentation
scheduleFile: "schedule.csv"
`

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
