package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, validateSource("left", &c.Left)...)
	errors = append(errors, validateSource("right", &c.Right)...)
	errors = append(errors, c.validateMapping()...)
	errors = append(errors, c.validateDisplay()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// validateSource checks a single dataset source: exactly one of file path or
// DSN+query, and a single-character delimiter for file sources.
func validateSource(side string, s *SourceConfig) ValidationErrors {
	var errors ValidationErrors

	hasPath := s.Path != ""
	hasSQL := s.DSN != "" || s.Query != ""

	switch {
	case hasPath && hasSQL:
		errors = append(errors, ValidationError{
			Field:   side,
			Message: "path and dsn/query are mutually exclusive",
		})
	case !hasPath && !hasSQL:
		errors = append(errors, ValidationError{
			Field:   side,
			Message: "either path or dsn+query is required",
		})
	case hasSQL && (s.DSN == "" || s.Query == ""):
		errors = append(errors, ValidationError{
			Field:   side,
			Message: "dsn and query must both be set for a SQL source",
		})
	}

	if hasPath && utf8.RuneCountInString(s.Delimiter) > 1 {
		errors = append(errors, ValidationError{
			Field:   side + ".delimiter",
			Message: fmt.Sprintf("must be a single character, got %q", s.Delimiter),
		})
	}

	return errors
}

func (c *Config) validateMapping() ValidationErrors {
	var errors ValidationErrors

	seenLeft := make(map[string]bool)
	seenRight := make(map[string]bool)
	for i, entry := range c.Mapping {
		if entry.Left == "" || entry.Right == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("mapping[%d]", i),
				Message: "left and right column names are required",
			})
			continue
		}
		if seenLeft[entry.Left] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("mapping[%d]", i),
				Message: fmt.Sprintf("left column %q mapped more than once", entry.Left),
			})
		}
		if seenRight[entry.Right] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("mapping[%d]", i),
				Message: fmt.Sprintf("right column %q mapped more than once", entry.Right),
			})
		}
		seenLeft[entry.Left] = true
		seenRight[entry.Right] = true
	}

	if c.Display.Mode == "custom" && len(c.Mapping) == 0 {
		errors = append(errors, ValidationError{
			Field:   "mapping",
			Message: "custom mode requires at least one mapping entry",
		})
	}

	return errors
}

func (c *Config) validateDisplay() ValidationErrors {
	var errors ValidationErrors

	if c.Display.Limit < 0 {
		errors = append(errors, ValidationError{
			Field:   "display.limit",
			Message: "must not be negative",
		})
	}

	switch c.Display.Filter {
	case "", "all", "left-only", "right-only", "both":
	default:
		errors = append(errors, ValidationError{
			Field:   "display.filter",
			Message: fmt.Sprintf("must be one of: all, left-only, right-only, both (got %q)", c.Display.Filter),
		})
	}

	switch c.Display.Mode {
	case "", "all", "custom":
	default:
		errors = append(errors, ValidationError{
			Field:   "display.mode",
			Message: fmt.Sprintf("must be one of: all, custom (got %q)", c.Display.Mode),
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of: debug, info, warn, error (got %q)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of: json, text (got %q)", c.Logging.Format),
		})
	}

	return errors
}

// DelimiterRune returns the source's delimiter as a rune, defaulting to ','.
func (s *SourceConfig) DelimiterRune() rune {
	if s.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	return r
}

// IsSQL reports whether the source reads from a database rather than a file.
func (s *SourceConfig) IsSQL() bool {
	return s.DSN != ""
}
