// Package dictsort reorders two-level dictionaries by locale-aware collation.
//
// Top-level keys and the keys of each immediate object value are sorted with
// golang.org/x/text/collate; deeper levels and non-object values are copied
// as they are. Sorting never changes the key set or any value.
package dictsort
