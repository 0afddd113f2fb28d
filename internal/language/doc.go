// Package language parses language lists and labels language identifiers.
//
// Language identifiers in translation files are opaque keys: ParseList keeps
// them verbatim and only trims, drops empties and removes duplicates. BCP 47
// handling (collation locales, display names) goes through golang.org/x/text.
package language
