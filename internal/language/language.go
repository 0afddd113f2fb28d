package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ParseList splits a comma-separated list of language identifiers. Entries are
// trimmed, empty entries dropped, and duplicates removed keeping the first.
func ParseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return NormalizeList(strings.Split(value, ","))
}

// NormalizeList trims and deduplicates identifiers, preserving order.
func NormalizeList(languages []string) []string {
	if len(languages) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(languages))
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		trimmed := strings.TrimSpace(lang)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// ParseTag parses a BCP 47 locale. Empty input yields the root locale.
func ParseTag(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return tag, nil
}

// DisplayName returns an English name for a language identifier.
// Returns "Unknown" for empty input, or the uppercased code when no name is known.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Unknown"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}
