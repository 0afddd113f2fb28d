package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"dictpivot/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePivot(); err != nil {
		return err
	}
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizePivot() error {
	if value, ok := os.LookupEnv(EnvLanguages); ok {
		c.Pivot.Languages = language.ParseList(value)
	} else {
		c.Pivot.Languages = language.NormalizeList(c.Pivot.Languages)
	}
	if value, ok := os.LookupEnv(EnvSort); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvSort, value)
		}
		c.Pivot.Sort = parsed
	}
	if value, ok := os.LookupEnv(EnvLocale); ok {
		c.Pivot.Locale = value
	}
	c.Pivot.Locale = strings.TrimSpace(c.Pivot.Locale)
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "yml" {
		c.Output.Format = "yaml"
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = NormalizeLogLevel(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

// NormalizeLogLevel lowercases level and maps the "warning" alias to "warn".
func NormalizeLogLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}
