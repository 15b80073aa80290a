// Package config provides configuration structures and loading for tablediff.
package config

// Config represents the complete application configuration.
type Config struct {
	Left    SourceConfig   `yaml:"left" mapstructure:"left"`
	Right   SourceConfig   `yaml:"right" mapstructure:"right"`
	Mapping []MappingEntry `yaml:"mapping" mapstructure:"mapping"`
	Ignore  []string       `yaml:"ignore" mapstructure:"ignore"`
	Display DisplayConfig  `yaml:"display" mapstructure:"display"`
	Logging LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig describes where one side's dataset comes from. Exactly one of
// Path (delimited file) or DSN+Query (MySQL) must be set.
type SourceConfig struct {
	Name      string `yaml:"name" mapstructure:"name"`           // display name; defaults to "left"/"right"
	Path      string `yaml:"path" mapstructure:"path"`           // delimited text file
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"` // single character, default ","
	DSN       string `yaml:"dsn" mapstructure:"dsn"`             // MySQL connection string
	Query     string `yaml:"query" mapstructure:"query"`         // query producing the dataset
}

// MappingEntry pairs a left column name with a right column name.
type MappingEntry struct {
	Left  string `yaml:"left" mapstructure:"left"`
	Right string `yaml:"right" mapstructure:"right"`
}

// DisplayConfig controls difference rendering.
type DisplayConfig struct {
	Limit  int    `yaml:"limit" mapstructure:"limit"`   // preview row limit
	Filter string `yaml:"filter" mapstructure:"filter"` // all, left-only, right-only, both
	Mode   string `yaml:"mode" mapstructure:"mode"`     // "all": seed mapping from matching names; "custom": explicit entries only
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Left: SourceConfig{
			Name:      "left",
			Delimiter: ",",
		},
		Right: SourceConfig{
			Name:      "right",
			Delimiter: ",",
		},
		Display: DisplayConfig{
			Limit:  50,
			Filter: "all",
			Mode:   "all",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, limit int, filter, mode string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if limit > 0 {
		c.Display.Limit = limit
	}
	if filter != "" {
		c.Display.Filter = filter
	}
	if mode != "" {
		c.Display.Mode = mode
	}
}
