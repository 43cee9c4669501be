package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Roster  RosterConfig  `mapstructure:"roster"`
	Filters FiltersConfig `mapstructure:"filters"`
}

// APIConfig holds the API connection details
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RosterConfig contains roster operation settings
type RosterConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// FiltersConfig contains the default filter expression and named presets
type FiltersConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}
