// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// LogLevelDebug logs everything, including per-file progress.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs informational messages and above.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// DefaultDelimiter is the default cut field delimiter.
	DefaultDelimiter = "\t"
	// DefaultHeadLines is the default head line count.
	DefaultHeadLines = 10
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDelimiter is returned when the configured delimiter is not one byte.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	// ErrInvalidHeadLines is returned when the configured head line count is below 1.
	ErrInvalidHeadLines = errors.New("invalid head line count")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum level written by the logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidDelimiterError is returned when cut.delimiter is not exactly one byte.
	// It wraps ErrInvalidDelimiter for errors.Is() compatibility.
	InvalidDelimiterError struct {
		Value string
	}

	// InvalidHeadLinesError is returned when head.lines is below 1.
	// It wraps ErrInvalidHeadLines for errors.Is() compatibility.
	InvalidHeadLinesError struct {
		Value int
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Cut configures cut defaults
		Cut CutConfig `json:"cut" mapstructure:"cut"`
		// Head configures head defaults
		Head HeadConfig `json:"head" mapstructure:"head"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures logging
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// CutConfig holds defaults for the cut utility.
	CutConfig struct {
		// Delimiter is the field delimiter used when -d is omitted.
		Delimiter string `json:"delimiter" mapstructure:"delimiter"`
	}

	// HeadConfig holds defaults for the head utility.
	HeadConfig struct {
		// Lines is the line count used when -n is omitted.
		Lines int `json:"lines" mapstructure:"lines"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and extended error help
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures the logger.
	LogConfig struct {
		// Level is the minimum level written to stderr
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// IsValid returns whether the delimiter is exactly one byte.
func (c CutConfig) IsValid() (bool, []error) {
	if len(c.Delimiter) != 1 {
		return false, []error{&InvalidDelimiterError{Value: c.Delimiter}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDelimiterError.
func (e *InvalidDelimiterError) Error() string {
	return fmt.Sprintf("invalid cut.delimiter %q: must be a single byte", e.Value)
}

// Unwrap returns ErrInvalidDelimiter for errors.Is() compatibility.
func (e *InvalidDelimiterError) Unwrap() error { return ErrInvalidDelimiter }

// IsValid returns whether the line count is at least 1.
func (c HeadConfig) IsValid() (bool, []error) {
	if c.Lines < 1 {
		return false, []error{&InvalidHeadLinesError{Value: c.Lines}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHeadLinesError.
func (e *InvalidHeadLinesError) Error() string {
	return fmt.Sprintf("invalid head.lines %d: must be at least 1", e.Value)
}

// Unwrap returns ErrInvalidHeadLines for errors.Is() compatibility.
func (e *InvalidHeadLinesError) Unwrap() error { return ErrInvalidHeadLines }

// IsValid returns whether the Config has valid fields.
// Values read from the CUE file are already schema checked; this catches
// environment overrides, which bypass the schema.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Cut.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Head.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Cut: CutConfig{
			Delimiter: DefaultDelimiter,
		},
		Head: HeadConfig{
			Lines: DefaultHeadLines,
		},
		UI: UIConfig{
			Verbose: false,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
	}
}
