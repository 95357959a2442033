package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when the config file does not set a value.
const (
	DefaultTerm     = "Summer 2025"
	DefaultWeeks    = 14
	DefaultTimezone = "Asia/Dhaka"

	// DateLayout is the format of SemesterStart.
	DateLayout = "2006-01-02"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	Department    string   `json:"department,omitempty"`
	Semester      string   `json:"semester,omitempty"`
	Term          string   `json:"term,omitempty"` // Printed as "Class Routine - <term>"
	SavedCourses  []string `json:"saved_courses,omitempty"`
	OutputDir     string   `json:"output_dir,omitempty"`
	LastFile      string   `json:"last_file,omitempty"`
	AccentColor   string   `json:"accent_color,omitempty"`
	SemesterStart string   `json:"semester_start,omitempty"` // YYYY-MM-DD, first week of classes for calendar export
	Weeks         int      `json:"weeks,omitempty"`
	Timezone      string   `json:"timezone,omitempty"`
}

// TermLabel returns the configured term or DefaultTerm.
func (c *AppConfig) TermLabel() string {
	if c.Term == "" {
		return DefaultTerm
	}
	return c.Term
}

// WeekCount returns the configured number of teaching weeks or DefaultWeeks.
func (c *AppConfig) WeekCount() int {
	if c.Weeks <= 0 {
		return DefaultWeeks
	}
	return c.Weeks
}

// Location returns the configured timezone or DefaultTimezone.
func (c *AppConfig) Location() string {
	if c.Timezone == "" {
		return DefaultTimezone
	}
	return c.Timezone
}

// getConfigPath returns the absolute path to ~/.routinegen.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".routinegen.json"), nil
}

// Path returns where the configuration lives on disk.
func Path() string {
	path, err := getConfigPath()
	if err != nil {
		return ".routinegen.json"
	}
	return path
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
