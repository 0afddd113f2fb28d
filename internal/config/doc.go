// Package config loads, normalizes, and validates dictpivot configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// DICTPIVOT_* environment overrides. The Config type centralizes every knob
// the CLI needs: the language set, sorting and collation locale, output
// presentation, and logging.
//
// Always obtain settings through this package so commands receive trimmed
// language lists, canonical format names, and clear validation errors.
package config
