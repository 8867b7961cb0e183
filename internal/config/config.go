package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calendar holds configuration for the dfcal tool.
type Calendar struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Output
	MonthSeparator string `yaml:"month_separator"` // between ordinal and month name
	ShowIndex      bool   `yaml:"show_index"`      // print table indices in listings
}

// DefaultCalendar returns Calendar config with sensible defaults.
func DefaultCalendar() Calendar {
	return Calendar{
		LogLevel:       "info",
		MonthSeparator: " ",
		ShowIndex:      false,
	}
}

// LoadCalendar loads calendar config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalendar(path string) (Calendar, error) {
	cfg := DefaultCalendar()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
