package config

import (
	"fmt"

	"dictpivot/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePivot(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePivot() error {
	if _, err := language.ParseTag(c.Pivot.Locale); err != nil {
		return fmt.Errorf("pivot.locale: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be json or yaml, got %q", c.Output.Format)
	}
	if err := ValidateIndent(c.Output.Indent); err != nil {
		return fmt.Errorf("output.indent %w", err)
	}
	return nil
}

// ValidateIndent checks an indentation width against the supported range.
func ValidateIndent(indent int) error {
	if indent < 0 || indent > maxIndent {
		return fmt.Errorf("must be between 0 and %d, got %d", maxIndent, indent)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
